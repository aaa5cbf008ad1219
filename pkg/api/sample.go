package api

import (
	"time"

	"github.com/ryansoe/eventory/pkg/deadline"
)

// Sample returns the demo dataset used by the --demo flag so the dashboard
// can be explored without a running API. It is never substituted silently on
// fetch failure.
func Sample() []deadline.Record {
	now := deadline.Timestamp{Time: time.Now()}
	return []deadline.Record{
		{
			ID:          "1",
			Title:       "Math Assignment #3",
			DateText:    "December 15th, 2023",
			ChannelName: "math-101",
			GuildName:   "School Server",
			AuthorName:  "Professor Smith",
			RawContent:  "Don't forget the Math Assignment #3 is due on December 15th. It covers chapters 7-9 and includes all practice problems at the end of each chapter.",
			Timestamp:   now,
		},
		{
			ID:          "2",
			Title:       "Physics Lab Report",
			DateText:    "December 10th, 2023",
			ChannelName: "physics-202",
			GuildName:   "School Server",
			Timestamp:   now,
		},
		{
			ID:          "3",
			Title:       "Term Paper Outline",
			DateText:    "December 20th, 2023",
			ChannelName: "english-comp",
			GuildName:   "School Server",
			Timestamp:   now,
		},
		{
			ID:          "4",
			Title:       "ACM Club Meeting",
			DateText:    "December 12th, 2023",
			ChannelName: "acm-general",
			GuildName:   "School Server",
			Timestamp:   now,
		},
		{
			ID:          "5",
			Title:       "Software Engineering Internship",
			DateText:    "December 18th, 2023",
			ChannelName: "career-center",
			GuildName:   "School Server",
			Timestamp:   now,
		},
	}
}
