package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexStringAcceptsStringsAndNumbers(t *testing.T) {
	var p CharacterProfile
	body := `{"name": "Ava", "age": 30, "loyal": "85", "selfCentered": 12.5, "techAverse": null}`

	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, FlexString("Ava"), p.Name)
	assert.Equal(t, FlexString("30"), p.Age)
	assert.Equal(t, FlexString("85"), p.Loyal)
	assert.Equal(t, FlexString("12.5"), p.SelfCentered)
	assert.Equal(t, FlexString(""), p.TechAverse)
}

func TestFlexStringDefaultsAbsentFieldsToEmpty(t *testing.T) {
	var p CharacterProfile
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))

	assert.Equal(t, FlexString(""), p.Name)
	assert.Equal(t, FlexString(""), p.AddChar)
}

func TestCharacterProfileWireNames(t *testing.T) {
	var p CharacterProfile
	// The additional-characteristics key is intentionally misspelled on the wire.
	body := `{"familyStatus": "two kids", "addtionalChracteristics": "hums while thinking"}`

	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, FlexString("two kids"), p.FamilyStatus)
	assert.Equal(t, FlexString("hums while thinking"), p.AddChar)
}

func TestFlexStringMarshalsAsString(t *testing.T) {
	b, err := json.Marshal(CharacterProfile{Age: "30"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"age":"30"`)
}
