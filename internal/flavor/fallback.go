package flavor

// Fallback messages used when the service is unavailable or rate-limited.
var fallbackMessages = []string{
	"It's ok! You did your best!",
	"Great hustle! Baking takes practice.",
	"You're a star baker in the making!",
	"Don't worry, even the best chefs drop toast.",
	"Eggie is proud of you no matter what!",
}

var fallbackRecipes = []string{
	"Eggie's Simple Toast\n1. Toast bread.\n2. Add butter.\n3. Enjoy!",
	"Cinnamon Sugar Delight\n1. Butter toast.\n2. Sprinkle cinnamon sugar.\n3. Eat warm.",
	"Classic Jam Sandwich\n1. Get two slices.\n2. Spread strawberry jam.\n3. Smash together!",
	"Cheesy Melt\n1. Put cheese on bread.\n2. Microwave for 30s.\n3. Gooey goodness.",
}

// FallbackMessage returns the canned message for a score.
// The same score always yields the same message.
func FallbackMessage(score int) string {
	return pick(fallbackMessages, score)
}

// FallbackRecipe returns the canned recipe for a score.
func FallbackRecipe(score int) string {
	return pick(fallbackRecipes, score)
}

func pick(pool []string, score int) string {
	i := score % len(pool)
	if i < 0 {
		i += len(pool)
	}
	return pool[i]
}
