// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/voyager/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

// FeedRefresher periodically asks the UI to reload the feed.
type FeedRefresher struct {
	interval time.Duration
	sender   Sender
	msg      tea.Msg
	logger   *logger.Logger
}

// NewFeedRefresher returns a worker that sends msg every interval. A
// non-positive interval disables it.
func NewFeedRefresher(interval time.Duration, sender Sender, msg tea.Msg, logger *logger.Logger) *FeedRefresher {
	return &FeedRefresher{
		interval: interval,
		sender:   sender,
		msg:      msg,
		logger:   logger,
	}
}

func (f *FeedRefresher) Run(ctx context.Context) {
	if f.interval <= 0 {
		f.logger.Debug().Str("func", "*FeedRefresher.Run").Msg("feed refresh disabled")
		return
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.logger.Debug().Str("func", "*FeedRefresher.Run").Dur("interval", f.interval).Msg("feed refresher started")
	for {
		select {
		case <-ctx.Done():
			f.logger.Debug().Str("func", "*FeedRefresher.Run").Msg("feed refresher stopped")
			return
		case <-ticker.C:
			f.sender.Send(f.msg)
		}
	}
}
