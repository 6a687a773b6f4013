package models

import "github.com/wahlandcase/subjectlens/pkg/subject"

// CommitEntry is one line of history ready for display
type CommitEntry struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// SubjectLine is the first line of the commit message, verbatim
	SubjectLine string
	// Subject is the classification of SubjectLine
	Subject subject.Subject
}

// NewCommitEntry classifies the subject line and builds a CommitEntry
func NewCommitEntry(hash, subjectLine string) CommitEntry {
	return CommitEntry{
		Hash:        hash,
		SubjectLine: subjectLine,
		Subject:     subject.Classify(subjectLine),
	}
}
