// Package domain contains the core entities of the population dashboard:
// country records scraped from the statistics page, the immutable snapshot
// they form, the derived migration points and the summary metrics. The types
// are free of infrastructure concerns so they can be shared across packages.
package domain
