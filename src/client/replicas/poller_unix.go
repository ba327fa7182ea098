// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package replicas

import (
	"time"

	"golang.org/x/sys/unix"
)

const readableEvents = unix.POLLIN | unix.POLLHUP | unix.POLLERR

type fdPoller struct {
	nowFn NowFn
}

func newFDPoller(nowFn NowFn) Poller {
	return &fdPoller{nowFn: nowFn}
}

func (p *fdPoller) Poll(handles []int, timeout time.Duration) ([]int, error) {
	fds := make([]unix.PollFd, 0, len(handles))
	for _, h := range handles {
		fds = append(fds, unix.PollFd{Fd: int32(h), Events: unix.POLLIN})
	}

	deadline := p.nowFn().Add(timeout)
	remaining := timeout
	for {
		n, err := unix.Poll(fds, timeoutMillis(remaining))
		if err == unix.EINTR {
			// Retry with whatever is left of the timeout.
			remaining = deadline.Sub(p.nowFn())
			if remaining <= 0 {
				return nil, nil
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil
		}

		ready := make([]int, 0, n)
		for _, fd := range fds {
			if fd.Revents&readableEvents != 0 {
				ready = append(ready, int(fd.Fd))
			}
		}
		return ready, nil
	}
}

func timeoutMillis(d time.Duration) int {
	ms := d / time.Millisecond
	if d > 0 && ms == 0 {
		// Round sub millisecond timeouts up rather than polling without waiting.
		return 1
	}
	return int(ms)
}
