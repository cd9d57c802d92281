package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"io"
)

const namespace = "primehashmap"

// Introspector - Defines the interface for reading the occupancy of a hash map
type Introspector interface {
	Size() int
	Capacity() int
	LoadFactor() float64
	EmptyBuckets() int
}

// Collector - A prometheus.Collector that reads the state of one hash map at every scrape
type Collector struct {
	source       Introspector
	size         *prometheus.Desc
	capacity     *prometheus.Desc
	loadFactor   *prometheus.Desc
	emptyBuckets *prometheus.Desc
}

// NewCollector - Returns a collector for the hash map source, name is added as the "map" label on all metrics
func NewCollector(name string, source Introspector) *Collector {
	labels := prometheus.Labels{"map": name}

	return &Collector{
		source: source,
		size: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "records"),
			"Number of records in the hash map",
			nil, labels,
		),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "capacity"),
			"Number of buckets in the hash map",
			nil, labels,
		),
		loadFactor: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "load_factor"),
			"Records divided by buckets",
			nil, labels,
		),
		emptyBuckets: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "empty_buckets"),
			"Number of buckets available for new records",
			nil, labels,
		),
	}
}

// Describe - Implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.loadFactor
	ch <- c.emptyBuckets
}

// Collect - Implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.source.Size()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.source.Capacity()))
	ch <- prometheus.MustNewConstMetric(c.loadFactor, prometheus.GaugeValue, c.source.LoadFactor())
	ch <- prometheus.MustNewConstMetric(c.emptyBuckets, prometheus.GaugeValue, float64(c.source.EmptyBuckets()))
}

// WriteText - Registers the collectors in a private registry and writes the gathered metrics
// in Prometheus text format to w
func WriteText(w io.Writer, collectors ...prometheus.Collector) error {
	registry := prometheus.NewRegistry()
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return err
		}
	}

	metricFamilies, err := registry.Gather()
	if err != nil {
		return err
	}

	encoder := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
