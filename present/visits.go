package present

import (
	"log/slog"
	"time"

	"github.com/dasdy/foamslides/db"
	"github.com/dasdy/foamslides/model"
)

// RecordVisits stores the current slide and every slide navigated to
// afterwards. Names are looked up in slides when the visit happens, so a
// rebuilt deck is recorded under its new names. slides and tracker may be nil.
func RecordVisits(nav *Navigator, storage db.Storage, tracker db.Tracker, slides *SlideSet) {
	record := func(slide int) {
		visit := model.SlideVisit{Slide: slide, Timestamp: time.Now()}
		if slides != nil {
			visit.Name = slides.Name(slide)
		}

		if err := storage.StoreVisit(visit); err != nil {
			slog.Error("Could not store visit", "slide", slide, "error", err)
		}

		if tracker != nil {
			tracker.HandleVisit(slide)
		}
	}

	nav.OnChange(func(_, to int) { record(to) })
	record(nav.Current())
}
