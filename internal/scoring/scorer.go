// Package scoring computes readiness scores from response snapshots.
// Score is a pure function: no side effects, deterministic, safe to
// call repeatedly on the same inputs.
package scoring

import (
	"github.com/phanindra-max/FrameworkLens/internal/catalog"
	"github.com/phanindra-max/FrameworkLens/internal/model"
)

// gapThreshold marks answered values at or below it as gaps on the
// default 0-4 scale (not implemented, planned, partially implemented).
const gapThreshold = 2

// Score computes per-area readiness scores plus an overall score from a
// response snapshot. Each area score is the weighted mean over answered,
// applicable questions only, so an unanswered question never counts as
// zero. Areas with no scoring answers get a nil score and are excluded
// from the overall weighted mean.
func Score(cat *catalog.Catalog, snap model.ResponseSnapshot) *model.ScoreReport {
	report := &model.ScoreReport{
		Gaps: []model.GapItem{},
	}

	var overallNum, overallDen float64

	for _, fw := range cat.Frameworks() {
		area := model.AreaScore{
			Area: fw.Area,
			Name: fw.Name,
		}
		var areaNum, areaDen float64

		for _, sec := range fw.Sections {
			ss := model.SectionScore{
				Name:  sec.Name,
				Total: len(sec.Questions),
			}
			for _, q := range sec.Questions {
				area.Total++
				ans, ok := snap[q.ID]
				if !ok {
					continue
				}
				area.Answered++
				ss.Answered++
				if ans.NotApplicable {
					continue
				}

				scaleRange := float64(q.ScaleMax - q.ScaleMin)
				normalized := float64(ans.Value-q.ScaleMin) / scaleRange

				ss.Earned += normalized * q.Weight
				ss.Max += q.Weight
				areaNum += normalized * q.Weight
				areaDen += q.Weight

				if ans.Value <= gapThreshold {
					report.Gaps = append(report.Gaps, model.GapItem{
						Area:       fw.Area,
						Section:    sec.Name,
						QuestionID: q.ID,
						Prompt:     q.Prompt,
						Value:      ans.Value,
					})
				}
			}
			if ss.Max > 0 {
				ss.Percent = ss.Earned / ss.Max * 100
			}
			area.Sections = append(area.Sections, ss)
		}

		if areaDen > 0 {
			score := areaNum / areaDen
			area.Score = &score

			// Overall weighs each area by its total question weight,
			// not just the answered portion.
			areaWeight := cat.TotalWeight(fw.Area)
			overallNum += score * areaWeight
			overallDen += areaWeight
		}

		report.Areas = append(report.Areas, area)
	}

	if overallDen > 0 {
		overall := overallNum / overallDen
		report.Overall = &overall
	}

	return report
}
