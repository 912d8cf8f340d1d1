// Package api serves the JSON API under /api/v1.
//
// @title           rental-agent API
// @version         1.0
// @description     Generate and archive marketing posts for the Del Playa listing.
// @BasePath        /api/v1
package api
