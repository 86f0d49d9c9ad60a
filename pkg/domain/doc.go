// Package domain contains the core business entities of the lead enrichment
// service: leads, their enrichment lifecycle, and the value objects produced
// by an enrichment run. The types are free of infrastructure concerns so they
// can be shared across storage, workers and the API.
package domain
