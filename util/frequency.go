package util

// FrequencyDict maps a key string to its occurrence count in a training
// corpus. It is read-only after construction; treat the exported map as
// frozen. Absent keys count as 0.
type FrequencyDict struct {
	Counts map[string]int
	Total  int
}

func NewFrequencyDict(counts map[string]int) *FrequencyDict {
	f := &FrequencyDict{Counts: make(map[string]int, len(counts))}
	for k, v := range counts {
		if v < 0 {
			panic("Negative count for key " + k)
		}
		f.Counts[k] = v
		f.Total += v
	}
	return f
}

func (f *FrequencyDict) Count(key string) int {
	return f.Counts[key]
}

func (f *FrequencyDict) Len() int {
	return len(f.Counts)
}
