// Package dashboard aggregates stored documents into monitoring counters.
package dashboard

import (
	"context"
	"strings"

	"github.com/regbot/server/internal/store"
)

// RiskWeights controls how category counts are converted into a single
// risk percentage. The result is clamped to 100.
type RiskWeights struct {
	Alert int
	AML   int
}

// DefaultRiskWeights weighs transaction alerts heavier than AML reviews.
var DefaultRiskWeights = RiskWeights{Alert: 15, AML: 5}

// Stats is the headline counter set shown on the dashboard.
type Stats struct {
	AMLReviews        int `json:"aml_reviews"`
	TransactionAlerts int `json:"transaction_alerts"`
	DocumentAudits    int `json:"document_audits"`
	RiskPercent       int `json:"risk_percent"`
}

// AlertLevels buckets documents by severity for the alerts panel.
type AlertLevels struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

type Aggregator struct {
	docs    store.DocumentStore
	weights RiskWeights
}

func New(docs store.DocumentStore, weights RiskWeights) *Aggregator {
	return &Aggregator{
		docs:    docs,
		weights: weights,
	}
}

// Stats counts documents per category and derives the weighted risk
// percentage over everything ingested so far.
func (a *Aggregator) Stats(ctx context.Context) (Stats, error) {
	docs, err := a.docs.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats

	for _, doc := range docs {
		switch strings.ToUpper(doc.Category) {
		case "AML":
			stats.AMLReviews++
		case "ALERT":
			stats.TransactionAlerts++
		default:
			stats.DocumentAudits++
		}
	}

	risk := stats.TransactionAlerts*a.weights.Alert + stats.AMLReviews*a.weights.AML
	if risk > 100 {
		risk = 100
	}

	stats.RiskPercent = risk

	return stats, nil
}

// Alerts maps categories to severity levels: transaction alerts are
// critical, AML reviews high and plain document audits low. Nothing
// currently produces medium.
func (a *Aggregator) Alerts(ctx context.Context) (AlertLevels, error) {
	docs, err := a.docs.List(ctx)
	if err != nil {
		return AlertLevels{}, err
	}

	var levels AlertLevels

	for _, doc := range docs {
		switch strings.ToUpper(doc.Category) {
		case "ALERT":
			levels.Critical++
		case "AML":
			levels.High++
		default:
			levels.Low++
		}
	}

	return levels, nil
}
