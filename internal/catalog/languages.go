package catalog

import "github.com/ovaphlow/pitchfork/service-datagen-go/internal/catalog/entity"

// languages is the full static reference set. Positions are significant:
// course language ids are 1-based indexes into this slice.
var languages = []entity.Language{
	{Name: "Spanish", PopularityScore: 0.9, ScriptType: "Latin", NativeSpeakersMillions: 484},
	{Name: "French", PopularityScore: 0.8, ScriptType: "Latin", NativeSpeakersMillions: 80},
	{Name: "German", PopularityScore: 0.7, ScriptType: "Latin", NativeSpeakersMillions: 95},
	{Name: "Japanese", PopularityScore: 0.6, ScriptType: "Kanji", NativeSpeakersMillions: 125},
	{Name: "English", PopularityScore: 1.0, ScriptType: "Latin", NativeSpeakersMillions: 390},
	{Name: "Mandarin", PopularityScore: 0.5, ScriptType: "Latin", NativeSpeakersMillions: 990},
	{Name: "Italian", PopularityScore: 0.4, ScriptType: "Latin", NativeSpeakersMillions: 67},
	{Name: "Russian", PopularityScore: 0.3, ScriptType: "Cyrillic", NativeSpeakersMillions: 154},
	{Name: "Portuguese", PopularityScore: 0.35, ScriptType: "Latin", NativeSpeakersMillions: 221},
	{Name: "Korean", PopularityScore: 0.25, ScriptType: "Hangul", NativeSpeakersMillions: 77},
	{Name: "Arabic", PopularityScore: 0.2, ScriptType: "Arabic", NativeSpeakersMillions: 310},
	{Name: "Hindi", PopularityScore: 0.15, ScriptType: "Devanagari", NativeSpeakersMillions: 341},
	{Name: "Turkish", PopularityScore: 0.1, ScriptType: "Latin", NativeSpeakersMillions: 75},
	{Name: "Dutch", PopularityScore: 0.05, ScriptType: "Latin", NativeSpeakersMillions: 23},
	{Name: "Swedish", PopularityScore: 0.03, ScriptType: "Latin", NativeSpeakersMillions: 10},
	{Name: "Greek", PopularityScore: 0.02, ScriptType: "Greek", NativeSpeakersMillions: 13},
	{Name: "Hebrew", PopularityScore: 0.01, ScriptType: "Hebrew", NativeSpeakersMillions: 9},
	{Name: "Vietnamese", PopularityScore: 0.04, ScriptType: "Latin", NativeSpeakersMillions: 86},
	{Name: "Polish", PopularityScore: 0.06, ScriptType: "Latin", NativeSpeakersMillions: 45},
	{Name: "Czech", PopularityScore: 0.02, ScriptType: "Latin", NativeSpeakersMillions: 10},
	{Name: "Danish", PopularityScore: 0.01, ScriptType: "Latin", NativeSpeakersMillions: 6},
	{Name: "Finnish", PopularityScore: 0.01, ScriptType: "Latin", NativeSpeakersMillions: 5},
	{Name: "Norwegian", PopularityScore: 0.01, ScriptType: "Latin", NativeSpeakersMillions: 5},
	{Name: "Hungarian", PopularityScore: 0.02, ScriptType: "Latin", NativeSpeakersMillions: 13},
	{Name: "Romanian", PopularityScore: 0.03, ScriptType: "Latin", NativeSpeakersMillions: 24},
	{Name: "Ukrainian", PopularityScore: 0.02, ScriptType: "Cyrillic", NativeSpeakersMillions: 30},
	{Name: "Indonesian", PopularityScore: 0.05, ScriptType: "Latin", NativeSpeakersMillions: 43},
	{Name: "Thai", PopularityScore: 0.03, ScriptType: "Thai", NativeSpeakersMillions: 20},
	{Name: "Swahili", PopularityScore: 0.02, ScriptType: "Latin", NativeSpeakersMillions: 16},
	{Name: "Filipino", PopularityScore: 0.04, ScriptType: "Latin", NativeSpeakersMillions: 28},
	{Name: "Malay", PopularityScore: 0.03, ScriptType: "Latin", NativeSpeakersMillions: 30},
	{Name: "Persian", PopularityScore: 0.02, ScriptType: "Persian", NativeSpeakersMillions: 70},
	{Name: "Catalan", PopularityScore: 0.01, ScriptType: "Latin", NativeSpeakersMillions: 10},
	{Name: "Basque", PopularityScore: 0.005, ScriptType: "Latin", NativeSpeakersMillions: 1.5},
	{Name: "Irish", PopularityScore: 0.005, ScriptType: "Latin", NativeSpeakersMillions: 1.8},
	{Name: "Welsh", PopularityScore: 0.005, ScriptType: "Latin", NativeSpeakersMillions: 0.9},
	{Name: "Icelandic", PopularityScore: 0.002, ScriptType: "Latin", NativeSpeakersMillions: 0.3},
	{Name: "Latvian", PopularityScore: 0.001, ScriptType: "Latin", NativeSpeakersMillions: 1.5},
	{Name: "Lithuanian", PopularityScore: 0.001, ScriptType: "Latin", NativeSpeakersMillions: 2.8},
	{Name: "Slovak", PopularityScore: 0.002, ScriptType: "Latin", NativeSpeakersMillions: 5.5},
	{Name: "Slovenian", PopularityScore: 0.001, ScriptType: "Latin", NativeSpeakersMillions: 2},
	{Name: "Croatian", PopularityScore: 0.002, ScriptType: "Latin", NativeSpeakersMillions: 5.5},
	{Name: "Serbian", PopularityScore: 0.002, ScriptType: "Cyrillic", NativeSpeakersMillions: 8},
	{Name: "Bulgarian", PopularityScore: 0.001, ScriptType: "Cyrillic", NativeSpeakersMillions: 7},
}

// baseLanguageCount bounds the subset of languages usable as a course's
// base (instruction) language: the first entries of the table.
const baseLanguageCount = 6
