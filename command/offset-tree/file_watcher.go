// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/offsettree/fault"
)

// FileWatcher - report changes to a single file
type FileWatcher interface {
	Start() error
	Stop() error
}

type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	fileName string
	channels watcherChannels
}

// the watcher never blocks, so the channels should be buffered
type watcherChannels struct {
	change chan struct{}
	remove chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannels) (FileWatcher, error) {
	fileName, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		fileName: fileName,
		channels: channels,
	}, nil
}

// Start - watch the directory holding the file, since editors often
// replace the file rather than write it in place
func (w *fileWatcher) Start() error {
	dir, _ := filepath.Split(w.fileName)
	if err := w.watcher.Add(dir); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return err
	}

	go func() {
		for event := range w.watcher.Events {
			if filepath.Clean(event.Name) != w.fileName {
				continue
			}
			w.log.Debugf("file event: %v", event)

			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if _, err := os.Stat(w.fileName); os.IsNotExist(err) {
					w.log.Warnf("file: %s removed", w.fileName)
					sendEvent(w.log, w.channels.remove, "remove")
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				sendEvent(w.log, w.channels.change, "change")
			}
		}
	}()

	go func() {
		for err := range w.watcher.Errors {
			w.log.Errorf("watcher error: %s", err)
		}
	}()

	return nil
}

// Stop - release the watcher, which closes its channels
func (w *fileWatcher) Stop() error {
	return w.watcher.Close()
}

// drop the event if one is already pending
func sendEvent(log *logger.L, ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		log.Debugf("event channel: %s full, discard event", name)
	}
}
