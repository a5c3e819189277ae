package targets

import (
	"context"
	"fmt"
	"os"

	"github.com/openpore/channelmap/internal/fetch"
	"github.com/openpore/channelmap/internal/util"
)

// Load resolves a targets source to a parsed Map. src may be:
//   - a gs://, s3:// or file:// URL of a descriptor file,
//   - a local file path (optionally gzip or zstd compressed, by extension),
//   - otherwise a single bare descriptor, parsed directly.
func Load(ctx context.Context, src string) (Map, error) {
	if fetch.IsRemote(src) {
		data, err := fetch.ReadAll(ctx, src)
		if err != nil {
			return nil, err
		}
		return Parse(util.SplitLines(data))
	}

	if info, err := os.Stat(src); err == nil && !info.IsDir() {
		data, err := fetch.ReadAll(ctx, src)
		if err != nil {
			return nil, err
		}
		return Parse(util.SplitLines(data))
	}

	// Not a file: the string is itself a descriptor.
	return Parse([]string{src})
}

// Resolve converts a raw targets field from the experiment document into
// a parsed Map. A string is treated as a path/URL/descriptor via Load;
// a list is parsed directly as descriptors.
func Resolve(ctx context.Context, field any) (Map, error) {
	switch v := field.(type) {
	case string:
		return Load(ctx, v)
	case []string:
		return Parse(v)
	case []any:
		lines := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: descriptor %v is %T, not a string", ErrBadDescriptor, item, item)
			}
			lines = append(lines, s)
		}
		return Parse(lines)
	default:
		return nil, fmt.Errorf("%w: unsupported targets type %T", ErrBadDescriptor, field)
	}
}
