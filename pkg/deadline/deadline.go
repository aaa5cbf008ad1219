package deadline

// Record is a single harvested deadline as delivered by the Eventory API.
// Field names mirror the backend response; everything except ID is optional
// and may arrive empty.
type Record struct {
	ID          string    `json:"id"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	DateText    string    `json:"date_str,omitempty"`
	ChannelName string    `json:"channel_name,omitempty"`
	GuildName   string    `json:"guild_name,omitempty"`
	AuthorName  string    `json:"author_name,omitempty"`
	RawContent  string    `json:"raw_content,omitempty"`
	SourceLink  string    `json:"source_link,omitempty"`
	Timestamp   Timestamp `json:"timestamp,omitempty"`
}

// Due derives the canonical date from DateText. It is recomputed on every
// call so a record can never carry a stale date.
func (r Record) Due() (CanonicalDate, bool) {
	return Normalize(r.DateText)
}

// Provenance renders the guild/channel pair for display, tolerating either
// being absent.
func (r Record) Provenance() string {
	switch {
	case r.GuildName == "" && r.ChannelName == "":
		return ""
	case r.GuildName == "":
		return "#" + r.ChannelName
	case r.ChannelName == "":
		return r.GuildName
	default:
		return r.GuildName + " / #" + r.ChannelName
	}
}
