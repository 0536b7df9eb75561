// Package interview generates role-tailored interview questions for a
// candidate profile.
package interview

// Question is one generated interview question. Type is the lower-cased
// question type tag, Evaluating names the competency the question probes.
// Question and Evaluating may be empty when the model's output was malformed;
// the parser degrades instead of failing.
type Question struct {
	Type       string `json:"type"`
	Question   string `json:"question"`
	Evaluating string `json:"evaluating"`
}
