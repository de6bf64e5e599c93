package models

import "encoding/json"

// FlexString accepts a JSON string, number, boolean, or null and keeps the
// literal token as text. Slider values arrive as strings or numbers depending
// on the client, and both are passed through untouched; null and absent
// fields become "".
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

func (f FlexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f FlexString) String() string { return string(f) }

// CharacterProfile is the persona snapshot submitted with every chat request
// and stored verbatim on each turn. Every field is optional; no range or type
// validation is applied to the sliders.
//
// The addtionalChracteristics key is misspelled on the wire; it is kept
// as-is for compatibility with existing clients.
type CharacterProfile struct {
	Name               FlexString `gorm:"column:name;type:text" json:"name"`
	Job                FlexString `gorm:"column:job;type:text" json:"job"`
	Age                FlexString `gorm:"column:age;type:text" json:"age"`
	Location           FlexString `gorm:"column:location;type:text" json:"location"`
	FamilyStatus       FlexString `gorm:"column:family_status;type:text" json:"familyStatus"`
	Relationship       FlexString `gorm:"column:relationship;type:text" json:"relationship"`
	Description        FlexString `gorm:"column:description;type:text" json:"description"`
	Sex                FlexString `gorm:"column:sex;type:text" json:"sex"`
	IntrovertExtrovert FlexString `gorm:"column:introvert_extrovert;type:text" json:"introvertExtrovert"`
	TechAverse         FlexString `gorm:"column:tech_averse;type:text" json:"techAverse"`
	SelfCentered       FlexString `gorm:"column:self_centered;type:text" json:"selfCentered"`
	Loyal              FlexString `gorm:"column:loyal;type:text" json:"loyal"`
	SkepticTrustful    FlexString `gorm:"column:skeptic_trustful;type:text" json:"skepticTrustful"`
	AddChar            FlexString `gorm:"column:add_char;type:text" json:"addtionalChracteristics"`
}
