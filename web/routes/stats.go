package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/foamslides/model"
	cs "github.com/dasdy/foamslides/web/components"
)

// BuildStatsContext joins visit counts with the transitions seen from each
// slide.
func (s *ServerHandler) BuildStatsContext(stats []model.SlideStat) cs.StatsContext {
	c := cs.StatsContext{
		Rows:  make([]cs.StatRow, 0, len(stats)),
		Total: s.Slides.Len(),
	}

	for _, st := range stats {
		row := cs.StatRow{Slide: st.Slide, Name: st.Name, Count: st.Count, Last: st.Last}
		if s.Tracker != nil {
			row.Transitions = s.Tracker.GatherTransitions(st.Slide)
		}

		c.MaxCount = max(c.MaxCount, st.Count)
		c.Rows = append(c.Rows, row)
	}

	return c
}

// StatsHandle handles requests to the stats page.
func (s *ServerHandler) StatsHandle(w http.ResponseWriter, _ *http.Request) {
	slog.Info("Handling stats page request")

	if s.Storage == nil {
		http.Error(w, "visit statistics are not recorded", http.StatusNotFound)

		return
	}

	curStats, err := s.Storage.GatherAll()
	if err != nil {
		slog.Error("Failed to get stats", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	c := s.BuildStatsContext(curStats)
	renderPage(cs.StatsPage(&c), w)
}
