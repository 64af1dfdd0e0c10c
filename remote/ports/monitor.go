package ports

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"sync"
	"time"

	"go.bug.st/serial"
)

type DeviceOpener interface {
	Open(path string) (io.ReadCloser, error)
}

// SerialOpener opens real serial devices.
type SerialOpener struct{}

func (SerialOpener) Open(path string) (io.ReadCloser, error) {
	return Open(path)
}

// Lister returns the device paths currently present.
type Lister func() ([]string, error)

// SerialLister lists serial ports known to the OS together with device files
// in dir.
func SerialLister(dir string) Lister {
	return func() ([]string, error) {
		serialDevices, err := serial.GetPortsList()
		if err != nil {
			return nil, fmt.Errorf("could not get list of serial ports: %w", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
		}

		for _, entry := range entries {
			if entry.IsDir() || entry.Type()&os.ModeDevice == 0 {
				continue
			}

			serialDevices = append(serialDevices, path.Join(dir, entry.Name()))
		}

		return serialDevices, nil
	}
}

// MonitoringDeviceReader polls for clickers and reads every one it finds.
// Clickers unplugged and plugged back in are picked up again.
type MonitoringDeviceReader struct {
	devices map[string]io.ReadCloser
	lock    sync.RWMutex

	opener DeviceOpener
	list   Lister

	pollingInterval time.Duration
}

func DefaultMonitoringDeviceReader() *MonitoringDeviceReader {
	return NewMonitoringDeviceReader(SerialOpener{}, SerialLister("/dev/"), 5*time.Second)
}

func NewMonitoringDeviceReader(opener DeviceOpener, list Lister, pollingInterval time.Duration) *MonitoringDeviceReader {
	return &MonitoringDeviceReader{
		devices:         make(map[string]io.ReadCloser),
		opener:          opener,
		list:            list,
		pollingInterval: pollingInterval,
	}
}

func (r *MonitoringDeviceReader) Close() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for p, device := range r.devices {
		if err := device.Close(); err != nil {
			return fmt.Errorf("error closing device %s: %w", p, err)
		}

		delete(r.devices, p)
	}

	return nil
}

// Open returns the paths of the devices being read, sorted.
func (r *MonitoringDeviceReader) Open() []string {
	r.lock.RLock()
	defer r.lock.RUnlock()

	result := make([]string, 0, len(r.devices))
	for p := range r.devices {
		result = append(result, p)
	}

	slices.Sort(result)

	return result
}

func (r *MonitoringDeviceReader) closeDevice(devicePath string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	device, exists := r.devices[devicePath]
	if !exists {
		return
	}

	if err := device.Close(); err != nil {
		slog.Error("Could not close device", "path", devicePath, "error", err)
	}

	delete(r.devices, devicePath)
	slog.Info("Device closed", "path", devicePath)
}

func (r *MonitoringDeviceReader) addDevice(ctx context.Context, devicePath string, out chan<- string, wg *sync.WaitGroup) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, exists := r.devices[devicePath]; exists {
		return nil
	}

	device, err := r.opener.Open(devicePath)
	if err != nil {
		return fmt.Errorf("error opening device %s: %w", devicePath, err)
	}

	r.devices[devicePath] = device

	wg.Add(1)

	go func() {
		defer wg.Done()
		defer r.closeDevice(devicePath)

		slog.Info("Device loop started", "path", devicePath)

		for line := range ReadFile(device) {
			select {
			case out <- line:
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// FindDevices returns clickers that are present but not being read yet.
func (r *MonitoringDeviceReader) FindDevices() ([]string, error) {
	all, err := r.list()
	if err != nil {
		return nil, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	result := make([]string, 0)

	for _, p := range all {
		if _, open := r.devices[p]; open || !LooksLikeClicker(p) || slices.Contains(result, p) {
			continue
		}

		result = append(result, p)
	}

	slices.Sort(result)

	return result, nil
}

// Channel polls for clickers until ctx is done and merges their lines. The
// channel is closed after ctx is done and every device loop has stopped.
func (r *MonitoringDeviceReader) Channel(ctx context.Context) <-chan string {
	out := make(chan string, 5)

	go func() {
		var wg sync.WaitGroup

		defer func() {
			if err := r.Close(); err != nil {
				slog.Error("Could not close devices", "error", err)
			}

			wg.Wait()
			close(out)
			slog.Info("End monitoring")
		}()

		ticker := time.NewTicker(r.pollingInterval)
		defer ticker.Stop()

		for {
			devices, err := r.FindDevices()
			if err != nil {
				slog.Error("Error finding devices", "error", err)
			}

			for _, devicePath := range devices {
				slog.Info("Found device", "path", devicePath)

				if err := r.addDevice(ctx, devicePath, out, &wg); err != nil {
					slog.Error("Could not add device", "path", devicePath, "error", err)
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return out
}
