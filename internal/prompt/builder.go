// Package prompt renders the persona system prompt and expands stored turns
// back into a completion message list.
package prompt

import (
	"fmt"

	"github.com/personachat/backend/internal/models"
)

// Missing fields render as empty strings and slider values are inserted
// exactly as submitted, including out-of-range or non-numeric ones.
const systemTemplate = `You are a fictional character in a story.
Your name is %s and your age is %s.
Your job is %s, your sex is %s, and you live in %s.
Your family status is %s and your relationship status is %s.

Here is more description about you:
%s

Personality sliders (0 to 100):
Extrovert level: %s (0 means extremely introvert, 100 means extremely extrovert).
Nerdy level: %s (0 means very tech averse, 100 means very tech savvy).
Loyal level: %s (0 means very fickle, 100 means extremely loyal).
Self centered level: %s (0 means very empathetic, 100 means very self centered).
Trustful level: %s (0 means very skeptical, 100 means very trusting).

Additional characteristics:
%s

You are having a natural conversation with the user as this character.
Stay consistent with the traits above. If the user asks something outside your knowledge,
you can make reasonable details up as long as they do not conflict with this profile.`

// BuildSystem renders the system prompt for the profile submitted on this
// request. It never fails; every field is optional.
func BuildSystem(p models.CharacterProfile) string {
	return fmt.Sprintf(systemTemplate,
		p.Name, p.Age,
		p.Job, p.Sex, p.Location,
		p.FamilyStatus, p.Relationship,
		p.Description,
		p.IntrovertExtrovert,
		p.TechAverse,
		p.Loyal,
		p.SelfCentered,
		p.SkepticTrustful,
		p.AddChar,
	)
}
