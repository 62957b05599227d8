package domain

// PostPatch is a partial Post: nil fields are left untouched by Apply,
// non-nil fields overwrite the stored value wholesale. Comments and
// LikedBy are replaced as complete slices, never merged element-wise.
// Id and CreatedAt are immutable and deliberately absent.
type PostPatch struct {
	Type        *PostType
	Category    *string
	Title       *string
	Description *string
	Location    *string
	Contact     *string
	Tags        *[]string
	Expires     *Date
	Likes       *int
	LikedBy     *[]string
	Comments    *[]Comment
	Status      *Status
}

// Apply merges the patch over post and returns the result. The receiver
// and argument are not modified.
func (patch PostPatch) Apply(post Post) Post {
	if patch.Type != nil {
		post.Type = *patch.Type
	}
	if patch.Category != nil {
		post.Category = *patch.Category
	}
	if patch.Title != nil {
		post.Title = *patch.Title
	}
	if patch.Description != nil {
		post.Description = *patch.Description
	}
	if patch.Location != nil {
		post.Location = *patch.Location
	}
	if patch.Contact != nil {
		post.Contact = *patch.Contact
	}
	if patch.Tags != nil {
		post.Tags = *patch.Tags
	}
	if patch.Expires != nil {
		post.Expires = patch.Expires
	}
	if patch.Likes != nil {
		post.Likes = *patch.Likes
	}
	if patch.LikedBy != nil {
		post.LikedBy = *patch.LikedBy
	}
	if patch.Comments != nil {
		post.Comments = *patch.Comments
	}
	if patch.Status != nil {
		post.Status = *patch.Status
	}
	return post
}

// AsPatch turns a full record into a patch touching every mutable field.
// Used when a handler recomputed the whole record and wants to commit it.
func (p Post) AsPatch() PostPatch {
	return PostPatch{
		Type:        &p.Type,
		Category:    &p.Category,
		Title:       &p.Title,
		Description: &p.Description,
		Location:    &p.Location,
		Contact:     &p.Contact,
		Tags:        &p.Tags,
		Expires:     p.Expires,
		Likes:       &p.Likes,
		LikedBy:     &p.LikedBy,
		Comments:    &p.Comments,
		Status:      &p.Status,
	}
}
