package webgen

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"
)

// Reference images often arrive straight off a phone camera. Anything
// larger than maxImageEdge on either side is downscaled before the
// request proceeds, so oversized uploads don't balloon the in-memory
// request.
const maxImageEdge = 1600

// NormalizeImages decodes and bounds every reference image, re-encoding
// the ones it resizes. A payload that is not valid base64 or not a
// decodable image fails the whole batch.
func NormalizeImages(images []ReferenceImage) ([]ReferenceImage, error) {
	if len(images) == 0 {
		return nil, nil
	}

	out := make([]ReferenceImage, 0, len(images))
	for _, ri := range images {
		raw, err := base64.StdEncoding.DecodeString(ri.Data)
		if err != nil {
			return nil, fmt.Errorf("image %q: invalid base64: %w", ri.Name, err)
		}
		img, err := imaging.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("image %q: %w", ri.Name, err)
		}

		b := img.Bounds()
		if b.Dx() > maxImageEdge || b.Dy() > maxImageEdge {
			img = imaging.Fit(img, maxImageEdge, maxImageEdge, imaging.Lanczos)

			format, mime := imaging.JPEG, "image/jpeg"
			if ri.Type == "image/png" {
				format, mime = imaging.PNG, "image/png"
			}
			var buf bytes.Buffer
			if err := imaging.Encode(&buf, img, format); err != nil {
				return nil, fmt.Errorf("image %q: re-encode: %w", ri.Name, err)
			}
			ri.Data = base64.StdEncoding.EncodeToString(buf.Bytes())
			ri.Type = mime
		}
		out = append(out, ri)
	}
	return out, nil
}
