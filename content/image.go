package content

// ImageState discriminates the three real states a draft image can be in.
// The source of truth for "did the user swap this image" is the pending state;
// no zero-byte sentinel files are used anywhere.
type ImageState string

const (
	// ImageUnset means no image has been chosen and none exists remotely.
	ImageUnset ImageState = "unset"
	// ImagePending means the user selected a new image that has not been
	// uploaded yet; the draft holds its bytes.
	ImagePending ImageState = "pending_upload"
	// ImageExisting means the record already has a persisted image; the draft
	// holds only its remote path.
	ImageExisting ImageState = "existing"
)

// ImageValue is a tagged union over the three image states. The zero value is
// the unset state.
type ImageValue struct {
	state    ImageState
	filename string
	data     []byte
	remote   string
}

// NoImage returns the unset image value.
func NoImage() ImageValue {
	return ImageValue{state: ImageUnset}
}

// PendingImage wraps bytes selected by the user for upload.
func PendingImage(filename string, data []byte) ImageValue {
	return ImageValue{state: ImagePending, filename: filename, data: data}
}

// ExistingImage references an image already persisted by the backend.
func ExistingImage(remotePath string) ImageValue {
	if remotePath == "" {
		return NoImage()
	}
	return ImageValue{state: ImageExisting, remote: remotePath}
}

// State returns the union tag; the zero value reports ImageUnset.
func (v ImageValue) State() ImageState {
	if v.state == "" {
		return ImageUnset
	}
	return v.state
}

// IsSet reports whether the value carries either pending bytes or a remote path.
func (v ImageValue) IsSet() bool {
	return v.State() != ImageUnset
}

// Pending reports whether the user swapped in new bytes during this session.
func (v ImageValue) Pending() bool {
	return v.State() == ImagePending
}

// Filename returns the user-facing filename of a pending upload.
func (v ImageValue) Filename() string {
	return v.filename
}

// Bytes returns the pending upload payload; nil for other states.
func (v ImageValue) Bytes() []byte {
	return v.data
}

// RemotePath returns the persisted path of an existing image; empty otherwise.
func (v ImageValue) RemotePath() string {
	return v.remote
}
