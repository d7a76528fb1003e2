package quran

// JuzCount is the number of juz the mushaf is divided into.
const JuzCount = 30

// SurahCount is the number of surahs in the mushaf.
const SurahCount = 114

// SurahRef identifies the surah an ayah belongs to.
type SurahRef struct {
	Number        int    `json:"number"`
	Name          string `json:"name"`
	EnglishName   string `json:"englishName"`
	NumberOfAyahs int    `json:"numberOfAyahs"`
}

// Ayah is a single verse with its position metadata.
type Ayah struct {
	Number        int      `json:"number"`
	Text          string   `json:"text"`
	Surah         SurahRef `json:"surah"`
	NumberInSurah int      `json:"numberInSurah"`
	Juz           int      `json:"juz"`
	HizbQuarter   int      `json:"hizbQuarter"`
}

// Surah is an entry of the surah directory.
type Surah struct {
	Number                 int    `json:"number"`
	Name                   string `json:"name"`
	EnglishName            string `json:"englishName"`
	EnglishNameTranslation string `json:"englishNameTranslation"`
	NumberOfAyahs          int    `json:"numberOfAyahs"`
	RevelationType         string `json:"revelationType"`
}

// Ref returns the reference form attached to each ayah.
func (s Surah) Ref() SurahRef {
	return SurahRef{
		Number:        s.Number,
		Name:          s.Name,
		EnglishName:   s.EnglishName,
		NumberOfAyahs: s.NumberOfAyahs,
	}
}
