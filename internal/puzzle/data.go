package puzzle

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Puzzle is one multiple-choice question. CorrectAnswer indexes Options.
type Puzzle struct {
	ID            string
	Kind          string // knowledge, logic, word
	Difficulty    Difficulty
	Question      string
	Options       []string
	CorrectAnswer int
	Explanation   string
}

var Catalog = []Puzzle{
	{ID: "k1", Kind: "knowledge", Difficulty: Easy, Question: "What planet is known as the Red Planet?", Options: []string{"Venus", "Mars", "Jupiter", "Saturn"}, CorrectAnswer: 1, Explanation: "Mars appears red due to iron oxide on its surface."},
	{ID: "k2", Kind: "knowledge", Difficulty: Easy, Question: "How many continents are there on Earth?", Options: []string{"5", "6", "7", "8"}, CorrectAnswer: 2, Explanation: "The 7 continents are Asia, Africa, North America, South America, Antarctica, Europe, and Australia."},
	{ID: "k3", Kind: "knowledge", Difficulty: Medium, Question: "What is the smallest bone in the human body?", Options: []string{"Femur", "Stapes", "Radius", "Patella"}, CorrectAnswer: 1, Explanation: "The stapes (stirrup) bone in the middle ear is the smallest bone."},
	{ID: "k4", Kind: "knowledge", Difficulty: Medium, Question: "Which element has the chemical symbol \"Au\"?", Options: []string{"Silver", "Aluminum", "Gold", "Argon"}, CorrectAnswer: 2, Explanation: "Au comes from the Latin word \"aurum\" meaning gold."},
	{ID: "k5", Kind: "knowledge", Difficulty: Hard, Question: "What is the speed of light in km/s (approximately)?", Options: []string{"150,000", "200,000", "300,000", "400,000"}, CorrectAnswer: 2, Explanation: "Light travels at approximately 299,792 km/s."},
	{ID: "l1", Kind: "logic", Difficulty: Easy, Question: "If all roses are flowers and some flowers fade quickly, can we conclude all roses fade quickly?", Options: []string{"Yes", "No", "Maybe", "Not enough info"}, CorrectAnswer: 1, Explanation: "Only \"some\" flowers fade quickly, so we cannot conclude all roses do."},
	{ID: "l2", Kind: "logic", Difficulty: Easy, Question: "What comes next: 2, 6, 12, 20, ?", Options: []string{"28", "30", "32", "24"}, CorrectAnswer: 1, Explanation: "The differences are 4, 6, 8, 10... so 20 + 10 = 30."},
	{ID: "l3", Kind: "logic", Difficulty: Medium, Question: "A bat and ball cost $1.10 together. The bat costs $1 more than the ball. How much is the ball?", Options: []string{"$0.10", "$0.05", "$0.15", "$0.01"}, CorrectAnswer: 1, Explanation: "If ball = $0.05, bat = $1.05. Total = $1.10."},
	{ID: "l4", Kind: "logic", Difficulty: Medium, Question: "If 5 machines take 5 minutes to make 5 widgets, how long for 100 machines to make 100 widgets?", Options: []string{"100 min", "5 min", "20 min", "50 min"}, CorrectAnswer: 1, Explanation: "Each machine makes 1 widget in 5 minutes. 100 machines make 100 widgets in 5 minutes."},
	{ID: "l5", Kind: "logic", Difficulty: Hard, Question: "I have 3 doors. Behind one is a prize. You pick door 1, I open door 3 (no prize). Should you switch to door 2?", Options: []string{"Yes, switch", "No, stay", "Makes no difference", "Need more info"}, CorrectAnswer: 0, Explanation: "The Monty Hall problem: switching gives you 2/3 chance of winning."},
	{ID: "w1", Kind: "word", Difficulty: Easy, Question: "What 5-letter word becomes shorter when you add 2 letters to it?", Options: []string{"Short", "Small", "Tiny", "Brief"}, CorrectAnswer: 0, Explanation: "\"Short\" becomes \"shorter\" when you add \"er\"."},
	{ID: "w2", Kind: "word", Difficulty: Easy, Question: "Which word is an anagram of \"LISTEN\"?", Options: []string{"TINSEL", "SILENT", "INSLET", "NESTLE"}, CorrectAnswer: 1, Explanation: "SILENT uses the exact same letters as LISTEN."},
	{ID: "w3", Kind: "word", Difficulty: Medium, Question: "What word can follow \"sun\", \"moon\", and \"day\"?", Options: []string{"Light", "Rise", "Set", "Time"}, CorrectAnswer: 0, Explanation: "Sunlight, moonlight, and daylight are all valid compound words."},
	{ID: "w4", Kind: "word", Difficulty: Medium, Question: "Which word means both a flying mammal and a piece of sports equipment?", Options: []string{"Club", "Bat", "Fly", "Racket"}, CorrectAnswer: 1, Explanation: "A bat is both the animal and the sports equipment."},
	{ID: "w5", Kind: "word", Difficulty: Hard, Question: "What 9-letter word still remains a word each time you remove a letter?", Options: []string{"Startling", "Splatters", "Streaming", "Strapping"}, CorrectAnswer: 0, Explanation: "Startling > starting > staring > string > sting > sing > sin > in > I."},
}

// ByID looks a puzzle up in the catalog.
func ByID(id string) (Puzzle, bool) {
	for _, p := range Catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Puzzle{}, false
}
