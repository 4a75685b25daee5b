package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/webp"
)

/*
ImageFetcher retrieves the image behind a view URL and decodes it.
*/
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (image.Image, error)
}

type ImageFetchServiceConfig struct {
	HTTPClient *http.Client

	/*
	 * Images wider than this are scaled down before display. 0 keeps the
	 * original size.
	 */
	MaxDisplayWidth uint

	/*
	 * Downloads larger than this many bytes are rejected before decoding.
	 * 0 means no limit.
	 */
	MaxImageBytes int64
}

type ImageFetchService struct {
	httpClient      *http.Client
	maxDisplayWidth uint
	maxImageBytes   int64
}

func NewImageFetchService(config ImageFetchServiceConfig) ImageFetchService {
	if config.HTTPClient == nil {
		config.HTTPClient = http.DefaultClient
	}

	return ImageFetchService{
		httpClient:      config.HTTPClient,
		maxDisplayWidth: config.MaxDisplayWidth,
		maxImageBytes:   config.MaxImageBytes,
	}
}

func (s ImageFetchService) Fetch(ctx context.Context, url string) (image.Image, error) {
	var (
		err      error
		request  *http.Request
		response *http.Response
		body     []byte
		img      image.Image
	)

	if request, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil); err != nil {
		return nil, fmt.Errorf("error creating request for '%s': %w", url, err)
	}

	if response, err = s.httpClient.Do(request); err != nil {
		return nil, fmt.Errorf("error downloading image from '%s': %w", url, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading image from '%s', status: %s", url, response.Status)
	}

	if body, err = s.readBody(response.Body); err != nil {
		return nil, fmt.Errorf("error reading image from '%s': %w", url, err)
	}

	if img, _, err = image.Decode(bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	img = applyOrientation(img, readOrientation(body))
	return s.resize(img), nil
}

func (s ImageFetchService) readBody(r io.Reader) ([]byte, error) {
	if s.maxImageBytes <= 0 {
		return io.ReadAll(r)
	}

	body, err := io.ReadAll(io.LimitReader(r, s.maxImageBytes+1))
	if err != nil {
		return nil, err
	}

	if int64(len(body)) > s.maxImageBytes {
		return nil, fmt.Errorf("image exceeds the %d byte limit", s.maxImageBytes)
	}

	return body, nil
}

func (s ImageFetchService) resize(img image.Image) image.Image {
	width := uint(img.Bounds().Dx())

	if s.maxDisplayWidth == 0 || width <= s.maxDisplayWidth {
		return img
	}

	// Height 0 keeps the aspect ratio
	return resize.Resize(s.maxDisplayWidth, 0, img, resize.Lanczos3)
}

/*
readOrientation returns the EXIF orientation of the encoded image, or 1
when there is no usable EXIF data.
*/
func readOrientation(body []byte) int {
	x, err := exif.Decode(bytes.NewReader(body))
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil {
		return 1
	}

	return orientation
}

func applyOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
