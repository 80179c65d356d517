package fxmonitor

type (
	// Row is a single data record of the upstream CSV keyed by column name.
	Row map[string]string

	Observation struct {
		Date string  `json:"date"`
		Rate float64 `json:"rate"`
	}

	Series []Observation

	// Payload is the content of one per-pair data file.
	Payload struct {
		Pair         string   `json:"pair"`
		Source       Provider `json:"source"`
		GeneratedUTC string   `json:"generated_utc"`
		Series       Series   `json:"series"`
	}

	ManifestEntry struct {
		Pair      string `json:"pair"`
		File      string `json:"file"`
		SeriesKey string `json:"series_key"`
	}

	// Manifest lists every file written by one run.
	Manifest struct {
		Source       Provider        `json:"source"`
		GeneratedUTC string          `json:"generated_utc"`
		Pairs        []ManifestEntry `json:"pairs"`
	}
)

const (
	TimePeriodField = "TIME_PERIOD"
	ObsValueField   = "OBS_VALUE"

	ManifestFileName = "manifest.json"
	GeneratedLayout  = "2006-01-02T15:04:05Z"
	DateLayout       = "2006-01-02"
)
