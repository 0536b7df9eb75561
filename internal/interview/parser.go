package interview

import (
	"strings"
	"unicode"
)

// The response parser is a small line-oriented state machine. Models follow
// the requested numbered "[Type] / Question: / Evaluating:" layout loosely at
// best, so the parser tolerates every deviation it has been seen to produce:
// dropped "Question:" prefixes, missing "Evaluating:" lines, stray prose
// before the first block. Malformed input degrades to blocks with empty
// fields; it never fails.

type parseState int

const (
	awaitingBlock parseState = iota
	inBlock
)

// minSentenceLen is the threshold for adopting a plain line as question text
// when the block has no "Question:" line yet.
const minSentenceLen = 10

// ParseQuestions parses free-form model output into questions. Blocks open on
// a numbered header containing a bracketed type, close on the next header or
// end of input, and are emitted in input order without re-sorting.
func ParseQuestions(raw string) []Question {
	questions := []Question{}
	state := awaitingBlock
	var current Question

	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if isBlockHeader(line) {
			if state == inBlock {
				questions = append(questions, current)
			}
			current = Question{Type: headerType(line)}
			state = inBlock
			continue
		}

		if state != inBlock {
			continue
		}

		switch {
		case hasFoldPrefix(line, "question:"):
			current.Question = afterColon(line)
		case hasFoldPrefix(line, "q:"):
			current.Question = afterColon(line)
		case hasFoldPrefix(line, "evaluating:"):
			current.Evaluating = afterColon(line)
		case current.Question == "" && len(line) > minSentenceLen:
			current.Question = line
		}
	}

	if state == inBlock {
		questions = append(questions, current)
	}

	return questions
}

// isBlockHeader reports whether the line opens a new question block: it must
// start with a digit and contain both brackets.
func isBlockHeader(line string) bool {
	r := []rune(line)
	return unicode.IsDigit(r[0]) && strings.Contains(line, "[") && strings.Contains(line, "]")
}

// headerType extracts the lower-cased text between the first bracket pair.
func headerType(line string) string {
	open := strings.Index(line, "[")
	closing := strings.Index(line, "]")
	if closing <= open {
		return ""
	}
	return strings.ToLower(line[open+1 : closing])
}

func hasFoldPrefix(line, prefix string) bool {
	return len(line) >= len(prefix) && strings.EqualFold(line[:len(prefix)], prefix)
}

func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}
