package ports_test

import (
	"errors"
	"io"
	"strings"
	"sync"
)

type nopCloser struct {
	io.Reader

	closed bool
}

func (c *nopCloser) Close() error {
	c.closed = true

	return nil
}

// OpenerMock hands out each device's content once. Later opens of the same
// device see an empty stream.
type OpenerMock struct {
	lock     sync.Mutex
	Contents map[string]string
	Opened   []string
}

func (o *OpenerMock) Open(path string) (io.ReadCloser, error) {
	o.lock.Lock()
	defer o.lock.Unlock()

	content, ok := o.Contents[path]
	if !ok {
		return nil, errors.New("no such device")
	}

	o.Opened = append(o.Opened, path)
	o.Contents[path] = ""

	return &nopCloser{Reader: strings.NewReader(content)}, nil
}

func (o *OpenerMock) OpenedPaths() []string {
	o.lock.Lock()
	defer o.lock.Unlock()

	return append([]string(nil), o.Opened...)
}
