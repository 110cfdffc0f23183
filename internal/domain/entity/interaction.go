package entity

import (
	"time"
)

// ResolvedVote records a non-owner's indication that a report looks resolved.
// Votes are append-only; the owner still has to approve the resolution.
type ResolvedVote struct {
	UserID   string    `json:"user_id" firestore:"userId"`
	UserName string    `json:"user_name" firestore:"userName"`
	VotedAt  time.Time `json:"voted_at" firestore:"votedAt"`
}

// ReportInteractions is the per-report aggregate of favorites, resolution
// votes and comment count. The document id equals the report id and all
// fields default to empty, never absent.
type ReportInteractions struct {
	Favorites     []string       `json:"favorites" firestore:"favorites"`
	ResolvedVotes []ResolvedVote `json:"resolved_votes" firestore:"resolvedVotes"`
	CommentsCount int64          `json:"comments_count" firestore:"commentsCount"`
}

func NewReportInteractions() *ReportInteractions {
	return &ReportInteractions{
		Favorites:     []string{},
		ResolvedVotes: []ResolvedVote{},
		CommentsCount: 0,
	}
}

func (i *ReportInteractions) IsFavoritedBy(userID string) bool {
	for _, uid := range i.Favorites {
		if uid == userID {
			return true
		}
	}
	return false
}

func (i *ReportInteractions) HasVoteFrom(userID string) bool {
	for _, vote := range i.ResolvedVotes {
		if vote.UserID == userID {
			return true
		}
	}
	return false
}
