package vfs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counts are lifetime counters of a lineage's handles. They are
// diagnostic only.
type Counts struct {
	// Created is the number of handles ever created.
	Created int64
	// Active is the number of handles still reachable through an open view.
	Active int64
	// Views is the number of open views (the root plus open snapshots).
	Views int64
}

// Counts returns the current counters.
func (v *Vfs) Counts() Counts {
	created := int64(v.inner.files.arena.len())
	views := v.inner.refs.Load()

	active := created
	if views == 0 {
		active = 0
	}
	return Counts{Created: created, Active: active, Views: views}
}

// Collector exports a Vfs's handle counts as Prometheus metrics.
type Collector struct {
	vfs *Vfs

	files   *prometheus.Desc
	created *prometheus.Desc
	active  *prometheus.Desc
	views   *prometheus.Desc
}

// NewCollector creates a collector for v. It does not hold a view open,
// so it never blocks StubVendored.
func NewCollector(v *Vfs, namespace string) *Collector {
	return &Collector{
		vfs: v,
		files: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vfs", "files"),
			"Number of resolved files by source and status",
			[]string{"source", "status"}, nil,
		),
		created: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vfs", "files_created_total"),
			"Total number of file handles created",
			nil, nil,
		),
		active: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vfs", "files_active"),
			"Number of file handles reachable through an open view",
			nil, nil,
		),
		views: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vfs", "views_open"),
			"Number of open views, the root included",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.files
	ch <- c.created
	ch <- c.active
	ch <- c.views
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	type key struct {
		source Source
		status FileStatus
	}
	byKey := map[key]int{}
	for _, e := range c.vfs.Entries() {
		byKey[key{source: e.Path.Source(), status: e.Status}]++
	}

	for _, source := range []Source{SourceFileSystem, SourceVendored} {
		for _, status := range []FileStatus{Exists, Deleted} {
			ch <- prometheus.MustNewConstMetric(c.files, prometheus.GaugeValue,
				float64(byKey[key{source: source, status: status}]),
				source.String(), status.String())
		}
	}

	counts := c.vfs.Counts()
	ch <- prometheus.MustNewConstMetric(c.created, prometheus.CounterValue, float64(counts.Created))
	ch <- prometheus.MustNewConstMetric(c.active, prometheus.GaugeValue, float64(counts.Active))
	ch <- prometheus.MustNewConstMetric(c.views, prometheus.GaugeValue, float64(counts.Views))
}

var _ prometheus.Collector = (*Collector)(nil)
