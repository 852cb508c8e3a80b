package pregnancy

// BabySize describes the approximate size of the baby at a given week using a
// familiar fruit or vegetable for scale.
type BabySize struct {
	Name     string  `json:"name"`
	Emoji    string  `json:"emoji"`
	LengthCm float64 `json:"length_cm"`
}

// Size table bounds in weeks, inclusive.
const (
	minSizeWeek = 4
	maxSizeWeek = 40
)

// fallbackSize covers weeks outside the table.
var fallbackSize = BabySize{Name: "little one", Emoji: "👶", LengthCm: 50}

var babySizes = map[int]BabySize{
	4:  {Name: "poppy seed", Emoji: "🌱", LengthCm: 0.2},
	5:  {Name: "sesame seed", Emoji: "🌾", LengthCm: 0.3},
	6:  {Name: "pea", Emoji: "🫛", LengthCm: 0.5},
	7:  {Name: "blueberry", Emoji: "🫐", LengthCm: 1.0},
	8:  {Name: "raspberry", Emoji: "🍒", LengthCm: 1.6},
	9:  {Name: "grape", Emoji: "🍇", LengthCm: 2.3},
	10: {Name: "strawberry", Emoji: "🍓", LengthCm: 3.1},
	11: {Name: "lime", Emoji: "🫒", LengthCm: 4.1},
	12: {Name: "plum", Emoji: "🌰", LengthCm: 5.4},
	13: {Name: "lemon", Emoji: "🍋", LengthCm: 7.4},
	14: {Name: "peach", Emoji: "🍑", LengthCm: 8.7},
	15: {Name: "apple", Emoji: "🍎", LengthCm: 10.1},
	16: {Name: "avocado", Emoji: "🥑", LengthCm: 11.6},
	17: {Name: "pear", Emoji: "🍐", LengthCm: 13.0},
	18: {Name: "bell pepper", Emoji: "🫑", LengthCm: 14.2},
	19: {Name: "tomato", Emoji: "🍅", LengthCm: 15.3},
	20: {Name: "banana", Emoji: "🍌", LengthCm: 16.4},
	21: {Name: "carrot", Emoji: "🥕", LengthCm: 26.7},
	22: {Name: "papaya", Emoji: "🥭", LengthCm: 27.8},
	23: {Name: "grapefruit", Emoji: "🍊", LengthCm: 28.9},
	24: {Name: "ear of corn", Emoji: "🌽", LengthCm: 30.0},
	25: {Name: "cauliflower", Emoji: "🥦", LengthCm: 34.6},
	26: {Name: "lettuce", Emoji: "🥬", LengthCm: 35.6},
	27: {Name: "cabbage", Emoji: "🥬", LengthCm: 36.6},
	28: {Name: "eggplant", Emoji: "🍆", LengthCm: 37.6},
	29: {Name: "butternut squash", Emoji: "🎃", LengthCm: 38.6},
	30: {Name: "cucumber", Emoji: "🥒", LengthCm: 39.9},
	31: {Name: "coconut", Emoji: "🥥", LengthCm: 41.1},
	32: {Name: "pineapple", Emoji: "🍍", LengthCm: 42.4},
	33: {Name: "large pineapple", Emoji: "🍍", LengthCm: 43.7},
	34: {Name: "cantaloupe", Emoji: "🍈", LengthCm: 45.0},
	35: {Name: "honeydew melon", Emoji: "🍈", LengthCm: 46.2},
	36: {Name: "large papaya", Emoji: "🥭", LengthCm: 47.4},
	37: {Name: "winter melon", Emoji: "🍈", LengthCm: 48.6},
	38: {Name: "watermelon", Emoji: "🍉", LengthCm: 49.8},
	39: {Name: "large watermelon", Emoji: "🍉", LengthCm: 50.7},
	40: {Name: "pumpkin", Emoji: "🎃", LengthCm: 51.2},
}

// SizeForWeek looks up the size descriptor for a week of pregnancy. Weeks
// outside the 4-40 range return a fixed fallback rather than failing.
func SizeForWeek(weeks int) BabySize {
	if size, ok := babySizes[weeks]; ok {
		return size
	}

	return fallbackSize
}
