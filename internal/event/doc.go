// Package event provides the normalized event model and the leaf logic
// that produces it: date/time resolution and title classification.
//
// The event package parses LeekDuck's two date formats (a full form with an
// explicit year and a short form without one) into instants anchored to a
// single fixed reference timezone, and maps free-text titles onto a fixed
// set of categories via an ordered keyword rule list. Each event carries a
// deterministic SHA1-derived identifier for stable calendar export.
package event
