package handlers

import (
	"strconv"

	"github.com/ticketsla/ticketsla/internal/application/ticket/dto"
)

// Histogram canvas geometry in SVG user units.
const (
	chartWidth       = 720.0
	chartHeight      = 260.0
	chartMarginLeft  = 8.0
	chartMarginRight = 8.0
	chartMarginTop   = 22.0
	chartAxisSpace   = 22.0
	chartBarGap      = 2.0
	// at most this many x-axis labels, spread evenly
	chartMaxLabels = 12
)

type chartBar struct {
	Label        string
	Start        string
	Met          int
	Missed       int
	X            float64
	Width        float64
	MetY         float64
	MetHeight    float64
	MissedY      float64
	MissedHeight float64
	ShowLabel    bool
}

// chartView is the histogram laid out for the inline SVG: each bar stacks
// the met count on the baseline with the missed count on top.
type chartView struct {
	Width     float64
	Height    float64
	PlotLeft  float64
	PlotRight float64
	Baseline  float64
	LabelY    float64
	MaxCount  int
	Bars      []chartBar
}

func newChartView(h dto.HistogramDTO) chartView {
	view := chartView{
		Width:     chartWidth,
		Height:    chartHeight,
		PlotLeft:  chartMarginLeft,
		PlotRight: chartWidth - chartMarginRight,
		Baseline:  chartHeight - chartAxisSpace,
		LabelY:    chartHeight - 6,
		MaxCount:  h.MaxCount,
	}
	if len(h.Bins) == 0 || h.MaxCount == 0 {
		return view
	}

	plotHeight := view.Baseline - chartMarginTop
	slot := (view.PlotRight - view.PlotLeft) / float64(len(h.Bins))
	barWidth := max(slot-chartBarGap, 1)
	scale := plotHeight / float64(h.MaxCount)

	labelEvery := (len(h.Bins) + chartMaxLabels - 1) / chartMaxLabels

	view.Bars = make([]chartBar, len(h.Bins))
	for i, bin := range h.Bins {
		metHeight := float64(bin.Met) * scale
		missedHeight := float64(bin.Missed) * scale
		view.Bars[i] = chartBar{
			Label:        bin.Label,
			Start:        strconv.FormatFloat(bin.Start, 'f', -1, 64),
			Met:          bin.Met,
			Missed:       bin.Missed,
			X:            round2(view.PlotLeft + float64(i)*slot),
			Width:        round2(barWidth),
			MetY:         round2(view.Baseline - metHeight),
			MetHeight:    round2(metHeight),
			MissedY:      round2(view.Baseline - metHeight - missedHeight),
			MissedHeight: round2(missedHeight),
			ShowLabel:    i%labelEvery == 0,
		}
	}
	return view
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
