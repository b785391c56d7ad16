package models

import (
	"encoding/json"
	"fmt"
)

// Label is the discrete sentiment classification of a review.
type Label int

const (
	Negative Label = -1
	Neutral  Label = 0
	Positive Label = 1
)

var labelNames = map[Label]string{
	Negative: "Negative",
	Neutral:  "Neutral",
	Positive: "Positive",
}

var labelFromName = map[string]Label{
	"Negative": Negative,
	"Neutral":  Neutral,
	"Positive": Positive,
}

func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := labelFromName[s]
	if !ok {
		return fmt.Errorf("unknown sentiment label %q", s)
	}
	*l = v
	return nil
}

// Labels lists the three labels in the order they are reported.
func Labels() []Label {
	return []Label{Positive, Negative, Neutral}
}
