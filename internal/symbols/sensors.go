// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package symbols

import (
	"sort"

	"github.com/petar-djukic/jsnview/internal/document"
	"github.com/petar-djukic/jsnview/internal/format"
)

// SensorParams is the number of parameter slots per telemetry device.
const SensorParams = 256

// Device holds the parameter labels of one telemetry device. Parameter 0
// is the device name.
type Device struct {
	ID     int64
	Params [SensorParams]string
	set    [SensorParams]bool
}

// Name returns the device label.
func (dev *Device) Name() string {
	return dev.Params[0]
}

// Param returns the label of parameter p.
func (dev *Device) Param(p int64) (string, bool) {
	if p < 0 || p >= SensorParams || !dev.set[p] {
		return "", false
	}
	return dev.Params[p], true
}

// SensorRecord is one entry of the flat Telem-Detect parameter stream.
type SensorRecord struct {
	ID    int64
	Param int64
	Label string
}

// Sensors maps device ids to their parameter labels.
type Sensors struct {
	devices map[int64]*Device
}

// BuildSensors reads the Telem-Detect record.
func BuildSensors(doc *document.Document, d *format.Diagnostics) *Sensors {
	rows := doc.Root.Get("Telem-Detect").Data()
	records := make([]SensorRecord, len(rows))
	for i, item := range rows {
		records[i] = SensorRecord{
			ID:    item.Get("ID").Int(),
			Param: item.Get("Param").Int(),
			Label: item.Get("Label").Str(),
		}
	}
	return CollectSensors(records, d)
}

// CollectSensors groups a flat parameter stream into devices.
func CollectSensors(records []SensorRecord, d *format.Diagnostics) *Sensors {
	c := NewSensorCollector(d)
	for _, r := range records {
		c.Add(r)
	}
	return c.Close()
}

// SensorCollector groups a parameter stream into devices one record at a
// time. A record with parameter 0 starts a new device; the device before
// it is committed at that boundary and the last device on Close. Records
// before the first boundary belong to no device and are dropped.
type SensorCollector struct {
	sensors *Sensors
	current *Device
	diag    *format.Diagnostics
}

// NewSensorCollector returns an empty collector.
func NewSensorCollector(d *format.Diagnostics) *SensorCollector {
	return &SensorCollector{
		sensors: &Sensors{devices: make(map[int64]*Device)},
		diag:    d,
	}
}

// Add consumes one record and returns the device it committed, if any.
func (c *SensorCollector) Add(r SensorRecord) *Device {
	var committed *Device
	if r.Param == 0 {
		committed = c.commit()
		c.current = &Device{ID: r.ID}
	}
	if r.Param < 0 || r.Param >= SensorParams {
		c.diag.Miss()
		return committed
	}
	if c.current != nil {
		c.current.Params[r.Param] = r.Label
		c.current.set[r.Param] = true
	}
	return committed
}

// Close commits the last device and returns the table. The collector must
// not be used afterwards.
func (c *SensorCollector) Close() *Sensors {
	c.commit()
	return c.sensors
}

func (c *SensorCollector) commit() *Device {
	dev := c.current
	if dev != nil {
		c.sensors.devices[dev.ID] = dev
		c.current = nil
	}
	return dev
}

// Device returns the device with the given id.
func (s *Sensors) Device(id int64) (*Device, bool) {
	dev, ok := s.devices[id]
	return dev, ok
}

// Lookup returns the device name and the label of parameter p.
func (s *Sensors) Lookup(id, p int64) (device, param string, ok bool) {
	dev, found := s.devices[id]
	if !found {
		return "", "", false
	}
	param, _ = dev.Param(p)
	return dev.Name(), param, true
}

// IDs returns the device ids in ascending order.
func (s *Sensors) IDs() []int64 {
	ids := make([]int64, 0, len(s.devices))
	for id := range s.devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of committed devices.
func (s *Sensors) Len() int {
	return len(s.devices)
}
