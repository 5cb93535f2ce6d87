package metadomain

type Ad struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Campaign Campaign `json:"campaign"`
	Creative Creative `json:"creative"`
}

type Campaign struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Creative struct {
	ID              string           `json:"id"`
	ImageURL        string           `json:"image_url"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	ObjectStorySpec *ObjectStorySpec `json:"object_story_spec"`
}

type ObjectStorySpec struct {
	VideoData *VideoData `json:"video_data"`
	LinkData  *LinkData  `json:"link_data"`
}

type VideoData struct {
	ImageURL string `json:"image_url"`
}

type LinkData struct {
	Picture          string            `json:"picture"`
	ChildAttachments []ChildAttachment `json:"child_attachments"`
}

type ChildAttachment struct {
	Picture string `json:"picture"`
}

// PreferredImageURL picks a representative image for the creative. The
// lookup is best effort and follows a fixed priority: direct image, then
// thumbnail, then video poster, then link picture, then the first carousel
// child. Returns "" when nothing is available.
func (c *Creative) PreferredImageURL() string {
	if c == nil {
		return ""
	}

	if c.ImageURL != "" {
		return c.ImageURL
	}

	if c.ThumbnailURL != "" {
		return c.ThumbnailURL
	}

	if c.ObjectStorySpec == nil {
		return ""
	}

	if c.ObjectStorySpec.VideoData != nil && c.ObjectStorySpec.VideoData.ImageURL != "" {
		return c.ObjectStorySpec.VideoData.ImageURL
	}

	if c.ObjectStorySpec.LinkData != nil {
		if c.ObjectStorySpec.LinkData.Picture != "" {
			return c.ObjectStorySpec.LinkData.Picture
		}

		if len(c.ObjectStorySpec.LinkData.ChildAttachments) > 0 {
			return c.ObjectStorySpec.LinkData.ChildAttachments[0].Picture
		}
	}

	return ""
}
