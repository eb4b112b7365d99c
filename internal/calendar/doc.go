// Package calendar exports normalized events as an iCalendar file.
//
// The calendar package maps events onto VEVENT components (summary, time
// window, description with source attribution, stable UID) and delegates
// the wire format to the golang-ical library.
package calendar
