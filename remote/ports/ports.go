// Package ports reads presenter clicker logs line by line from serial
// devices.
package ports

import (
	"bufio"
	"io"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"
)

const (
	baudRate    = 9600
	readTimeout = 10 * time.Hour
)

// Open opens the serial device at path. Closing the reader closes the port.
func Open(path string) (io.ReadCloser, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baudRate,
	})
	if err != nil {
		return nil, err
	}

	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()

		return nil, err
	}

	return port, nil
}

// ReadFile sends every line of r to the returned channel and closes it once
// r is exhausted.
func ReadFile(r io.Reader) <-chan string {
	ch := make(chan string)

	go func() {
		defer close(ch)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()

	return ch
}

// ReadFiles merges the lines of all readers. The channel is closed when every
// reader is exhausted.
func ReadFiles(rs ...io.Reader) <-chan string {
	out := make(chan string)

	var wg sync.WaitGroup

	wg.Add(len(rs))

	for _, r := range rs {
		go func() {
			defer wg.Done()

			for line := range ReadFile(r) {
				out <- line
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// LooksLikeClicker reports whether path names a USB serial device a clicker
// would show up as.
func LooksLikeClicker(path string) bool {
	for _, prefix := range []string{"/dev/tty.usbmodem", "/dev/ttyACM", "/dev/ttyUSB"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func GetAvailableDevices() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(names))

	for _, n := range names {
		if LooksLikeClicker(n) {
			result = append(result, n)
		}
	}

	return result, nil
}
