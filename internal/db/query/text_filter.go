package query

// TextFilter holds the optional criteria accepted by the text catalog
// search. Zero values mean "no restriction".
type TextFilter struct {
	TopicID    uint
	Difficulty string
	Length     string
	Tag        string
	TitleLike  string
}

// Apply appends the non-empty criteria to the builder as parameterized
// conditions.
func (f TextFilter) Apply(qb *QueryBuilder) *QueryBuilder {
	if f.TopicID != 0 {
		qb.Where("topic_id = ?", f.TopicID)
	}
	if f.Difficulty != "" {
		qb.Where("difficulty = ?", f.Difficulty)
	}
	if f.Length != "" {
		qb.Where("length = ?", f.Length)
	}
	if f.Tag != "" {
		// Tags are stored as a JSON array; a substring match on the quoted
		// value is enough for single-word tags.
		qb.Where("tags LIKE ?", "%\""+f.Tag+"\"%")
	}
	if f.TitleLike != "" {
		qb.Where("title LIKE ?", "%"+f.TitleLike+"%")
	}
	return qb
}
