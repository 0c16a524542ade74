package usecases

import (
	"math"
	"strconv"

	"github.com/ticketsla/ticketsla/internal/application/ticket/dto"
	"github.com/ticketsla/ticketsla/internal/domain/ticket"
)

// maxHistogramBins bounds the bar count; outliers widen the bins instead.
const maxHistogramBins = 60

// buildHistogram groups durations into contiguous bins of binHours, from the
// bin holding the shortest ticket to the bin holding the longest. Negative
// durations get bins of their own below zero. When the range would need more
// than maxHistogramBins bins, the width doubles until it fits; the width used
// is reported in BinHours.
func buildHistogram(tickets []*ticket.Ticket, binHours float64) dto.HistogramDTO {
	h := dto.HistogramDTO{BinHours: binHours, Bins: []dto.HistogramBinDTO{}}
	if len(tickets) == 0 || binHours <= 0 {
		return h
	}

	shortest, longest := tickets[0].DurationHours(), tickets[0].DurationHours()
	for _, t := range tickets[1:] {
		shortest = math.Min(shortest, t.DurationHours())
		longest = math.Max(longest, t.DurationHours())
	}

	binOf := func(hours float64) int {
		return int(math.Floor(hours / binHours))
	}
	for binOf(longest)-binOf(shortest)+1 > maxHistogramBins {
		binHours *= 2
	}
	h.BinHours = binHours

	lo, hi := binOf(shortest), binOf(longest)

	bins := make([]dto.HistogramBinDTO, hi-lo+1)
	for i := range bins {
		start := float64(lo+i) * binHours
		bins[i] = dto.HistogramBinDTO{
			Start: start,
			End:   start + binHours,
			Label: formatHours(start) + " to " + formatHours(start+binHours),
		}
	}

	for _, t := range tickets {
		bin := &bins[binOf(t.DurationHours())-lo]
		if t.SLAMet() {
			bin.Met++
		} else {
			bin.Missed++
		}
		bin.Total++
		h.MaxCount = max(h.MaxCount, bin.Total)
	}

	h.Bins = bins
	return h
}

func summarize(tickets []*ticket.Ticket) dto.SummaryDTO {
	s := dto.SummaryDTO{Total: len(tickets)}
	for _, t := range tickets {
		if t.SLAMet() {
			s.Met++
		}
	}
	s.Missed = s.Total - s.Met
	if s.Total > 0 {
		s.ComplianceRate = float64(s.Met) / float64(s.Total) * 100
	}
	return s
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
