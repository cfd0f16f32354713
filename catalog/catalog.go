// Package catalog defines the static lists of selectable activities: the
// dishes that can be put on the stove for a focus session, and the snacks
// reserved for breaks.
package catalog

// Activity is a selectable catalog entry. A NominalDurationMinutes of zero
// marks the free-running (count-up) activity.
type Activity struct {
	ID                     string
	Name                   string
	IconKey                string
	NominalDurationMinutes int
}

// CountUp reports whether selecting this activity puts the clock in
// count-up mode.
func (a Activity) CountUp() bool {
	return a.NominalDurationMinutes == 0
}

// FocusItems is the ordered focus catalog. The first entry is the default
// selection.
var FocusItems = []Activity{
	{ID: "lurou", Name: "古法卤肉饭 Braised Pork Rice", IconKey: "lurou", NominalDurationMinutes: 25},
	{ID: "rice", Name: "竹筒糯米饭 Bamboo Sticky Rice", IconKey: "rice", NominalDurationMinutes: 15},
	{ID: "stew", Name: "浓汤腌笃鲜 Bamboo Shoot & Pork Soup", IconKey: "stew", NominalDurationMinutes: 45},
	{ID: "cake", Name: "腊肉炒年糕 Stir-fried Rice Cake", IconKey: "cake", NominalDurationMinutes: 20},
	{ID: "fish", Name: "豆腐鱼头汤 Fish Head Tofu Soup", IconKey: "fish", NominalDurationMinutes: 10},
	{ID: "noodle", Name: "番茄鸡蛋面 Tomato Egg Noodles", IconKey: "noodle", NominalDurationMinutes: 25},
}

// BreakItems is the ordered break catalog.
var BreakItems = []Activity{
	{ID: "break-tea", Name: "珍珠奶茶 Pearl Milk Tea", IconKey: "milktea", NominalDurationMinutes: 5},
	{ID: "break-apple", Name: "脆红富士 Fuji Apple", IconKey: "apple", NominalDurationMinutes: 15},
}

// FreeSimmer is the pseudo-activity that signals count-up mode.
var FreeSimmer = Activity{
	ID:      "free",
	Name:    "自在焖煮 Free Simmer",
	IconKey: "stove",
}

// IconFor returns the icon key for the named activity, or "default" when
// the name is not in either catalog (e.g. manually added records).
func IconFor(name string) string {
	for _, a := range FocusItems {
		if a.Name == name {
			return a.IconKey
		}
	}

	for _, a := range BreakItems {
		if a.Name == name {
			return a.IconKey
		}
	}

	if name == FreeSimmer.Name {
		return FreeSimmer.IconKey
	}

	return "default"
}
