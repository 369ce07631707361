package api

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// metrics returns GET /metrics: request and dataset counters in the
// Prometheus text format.
func (h *Handler) metrics(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	w.Header().Set("Content-Type", string(format))
	w.WriteHeader(http.StatusOK)

	enc := expfmt.NewEncoder(w, format)
	for _, mf := range h.families() {
		if err := enc.Encode(mf); err != nil {
			return
		}
	}
}

func (h *Handler) families() []*dto.MetricFamily {
	h.mu.Lock()
	routes := make([]string, 0, len(h.requests))
	for r := range h.requests {
		routes = append(routes, r)
	}
	sort.Strings(routes)
	requests := make([]*dto.Metric, 0, len(routes))
	for _, r := range routes {
		requests = append(requests, &dto.Metric{
			Label:   []*dto.LabelPair{{Name: proto.String("route"), Value: proto.String(r)}},
			Counter: &dto.Counter{Value: proto.Float64(h.requests[r])},
		})
	}
	h.mu.Unlock()

	st := h.data.Stats()
	mfs := []*dto.MetricFamily{
		counter("compass_dashboard_requests_total", "API requests by route.", requests...),
		counter("compass_dashboard_dataset_loads_total", "Times the dataset was read from disk.",
			&dto.Metric{Counter: &dto.Counter{Value: proto.Float64(float64(st.Loads))}}),
		counter("compass_dashboard_dataset_invalidations_total", "Times the cached dataset was dropped.",
			&dto.Metric{Counter: &dto.Counter{Value: proto.Float64(float64(st.Invalidations))}}),
		gauge("compass_dashboard_dataset_rows", "Countries in the cached dataset.", float64(st.Rows)),
	}
	if !st.LoadedAt.IsZero() {
		mfs = append(mfs, gauge("compass_dashboard_dataset_loaded_timestamp_seconds",
			"Unix time the dataset was last loaded.", float64(st.LoadedAt.UnixMilli())/1000))
	}
	return mfs
}

func counter(name, help string, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_COUNTER.Enum(),
		Metric: metrics,
	}
}

func gauge(name, help string, v float64) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: []*dto.Metric{{Gauge: &dto.Gauge{Value: proto.Float64(v)}}},
	}
}
