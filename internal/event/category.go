package event

import "strings"

// Category identifies the kind of event a title describes.
type Category string

const (
	CategoryRaidHour     Category = "raid-hour"
	CategoryRaidDay      Category = "raid-day"
	CategoryMegaRaid     Category = "mega-raid"
	CategoryRaidBattle   Category = "raid-battle"
	CategoryMaxBattle    Category = "max-battle"
	CategorySpotlight    Category = "spotlight-hour"
	CategoryCommunityDay Category = "community-day"
	CategoryBattleLeague Category = "battle-league"
	CategoryFestival     Category = "festival"
	CategoryHalloween    Category = "halloween"
	CategoryGoPass       Category = "go-pass"
	CategoryWildArea     Category = "wild-area"
	CategorySeason       Category = "season"
	CategoryTrade        Category = "trade"
	CategoryShowcase     Category = "showcase"
	CategoryResearch     Category = "research"
	CategoryGeneral      Category = "general"
)

// rule maps a keyword set to a category. The first keyword contained in
// the lowercased title wins.
type rule struct {
	category Category
	keywords []string
}

// Rules are evaluated in order; titles like "Mega Raid Battles" contain
// keywords of several rules and must resolve to the most specific one, so
// the specific rules come first.
var classifyRules = []rule{
	{CategoryRaidHour, []string{"raid hour"}},
	{CategoryRaidDay, []string{"raid day", "raid weekend"}},
	{CategoryMegaRaid, []string{"mega raid", "in mega raids"}},
	{CategoryRaidBattle, []string{"in 1-star", "in 2-star", "in 3-star", "in 4-star", "in 5-star", "in 6-star", "raid battles"}},
	{CategoryMaxBattle, []string{"max battle", "max monday", "dynamax", "gigantamax"}},
	{CategorySpotlight, []string{"spotlight hour"}},
	{CategoryCommunityDay, []string{"community day"}},
	{CategoryBattleLeague, []string{"go battle", "battle league", "pvp"}},
	{CategoryFestival, []string{"festival", "celebration"}},
	{CategoryHalloween, []string{"halloween"}},
	{CategoryGoPass, []string{"go pass"}},
	{CategoryWildArea, []string{"wild area", "safari"}},
	{CategorySeason, []string{"season", "tales of transformation"}},
	{CategoryTrade, []string{"trade"}},
	{CategoryShowcase, []string{"showcase"}},
	{CategoryResearch, []string{"research"}},
}

// glyphs maps each category to the emoji used to prefix event titles.
var glyphs = map[Category]string{
	CategoryRaidHour:     "⏰",
	CategoryRaidDay:      "🎯",
	CategoryMegaRaid:     "💫",
	CategoryRaidBattle:   "⚔️",
	CategoryMaxBattle:    "⭐",
	CategorySpotlight:    "🔦",
	CategoryCommunityDay: "👥",
	CategoryBattleLeague: "🥊",
	CategoryFestival:     "🎉",
	CategoryHalloween:    "🎃",
	CategoryGoPass:       "🎫",
	CategoryWildArea:     "🗺️",
	CategorySeason:       "🌍",
	CategoryTrade:        "🤝",
	CategoryShowcase:     "📸",
	CategoryResearch:     "🔍",
	CategoryGeneral:      "📅",
}

// Classify maps a free-text title to a category. Matching is
// case-insensitive substring containment over an ordered rule list.
func Classify(title string) Category {
	lower := strings.ToLower(title)
	for _, r := range classifyRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}
	return CategoryGeneral
}

// Glyph returns the emoji associated with the category. Unknown categories
// get the general-event glyph.
func (c Category) Glyph() string {
	if g, ok := glyphs[c]; ok {
		return g
	}
	return glyphs[CategoryGeneral]
}
