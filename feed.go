package flog

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dangolsanat/FLog/internal/rest"
	"github.com/dangolsanat/FLog/internal/types"
)

// FeedMode selects which entries a Feed fetches and whether local mutations
// after create/update/delete are applied to its cache.
type FeedMode int

const (
	// FeedPersonal shows this device's entries, meal date descending.
	FeedPersonal FeedMode = iota
	// FeedAll shows every device's entries, meal date descending.
	FeedAll
	// FeedRandom shows a small unstable sample for shuffle-style browsing.
	FeedRandom
)

func (m FeedMode) String() string {
	switch m {
	case FeedPersonal:
		return "personal"
	case FeedAll:
		return "all"
	case FeedRandom:
		return "random"
	default:
		return "unknown"
	}
}

const randomFeedLimit = 20

// ImageProcessor converts raw image bytes into upload-ready compressed
// JPEG bytes. Processing is external to the SDK; the default processor
// passes bytes through unchanged.
type ImageProcessor func([]byte) ([]byte, error)

// AddEntryInput carries the user-supplied fields for a new entry.
type AddEntryInput struct {
	Title       string
	Description string
	MealType    MealType
	Ingredients []string
	Photo       []byte // raw image bytes; nil means no photo
	MealDate    time.Time
}

// Feed owns the in-memory entry list for one feed mode. Every published
// value (entries, loading flag, upload progress) is guarded by one mutex,
// and accessors hand out copies, so a Feed may be shared across goroutines.
// Fetch results are versioned: a completion that lost the race against a
// newer fetch or a finished mutation is discarded instead of clobbering it.
type Feed struct {
	client       *Client
	uploader     *Uploader
	mode         FeedMode
	process      ImageProcessor
	progressTick time.Duration

	ctx    context.Context // parent of every request this feed issues
	cancel context.CancelFunc
	once   sync.Once

	mu          sync.Mutex
	entries     []FoodEntry
	loading     bool
	progress    float64
	progressSet bool
	version     uint64
}

// FeedOption configures a Feed during construction.
type FeedOption func(*Feed)

// WithImageProcessor installs the external photo processor used by
// AddEntry before upload.
func WithImageProcessor(p ImageProcessor) FeedOption {
	return func(f *Feed) { f.process = p }
}

// WithProgressInterval overrides the simulated upload-progress step
// duration (default 100ms). Mostly useful in tests.
func WithProgressInterval(d time.Duration) FeedOption {
	return func(f *Feed) {
		if d > 0 {
			f.progressTick = d
		}
	}
}

// NewFeed constructs a Feed over client for the given mode. The mode is
// fixed for the feed's lifetime; separate feeds do not share entry state.
func NewFeed(client *Client, mode FeedMode, opts ...FeedOption) *Feed {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		client:       client,
		uploader:     NewUploader(client),
		mode:         mode,
		process:      func(b []byte) ([]byte, error) { return b, nil },
		progressTick: 100 * time.Millisecond,
		ctx:          ctx,
		cancel:       cancel,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Mode returns the feed mode fixed at construction.
func (f *Feed) Mode() FeedMode { return f.mode }

// Entries returns a copy of the current entry list.
func (f *Feed) Entries() []FoodEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]FoodEntry, len(f.entries))
	copy(out, f.entries)
	return out
}

// IsLoading reports whether a fetch or mutation is in progress.
func (f *Feed) IsLoading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// UploadProgress returns the simulated photo-upload progress and whether an
// upload is in progress. The value ramps from 0.0 to 1.0 during AddEntry's
// photo step and is absent otherwise.
func (f *Feed) UploadProgress() (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.progress, f.progressSet
}

// Close cancels this feed's outstanding requests. Other feeds sharing the
// client are unaffected. Safe to call multiple times.
func (f *Feed) Close() error {
	f.once.Do(f.cancel)
	return nil
}

// Fetch refreshes the entry list for the feed mode.
func (f *Feed) Fetch(ctx context.Context) error {
	return f.Search(ctx, "")
}

// Search refreshes the entry list, narrowed by a free-text query against
// title, description and ingredients (personal mode only; other modes
// ignore the query). Debouncing rapid query edits is the caller's job; see
// SearchDebouncer. The list is replaced wholesale only on full success, and
// a completion superseded by a newer fetch or a finished mutation is
// discarded.
func (f *Feed) Search(ctx context.Context, query string) error {
	ctx, done := f.scoped(ctx)
	defer done()

	f.mu.Lock()
	// Issuing a fetch bumps the version so any older in-flight fetch can no
	// longer apply its result.
	f.version++
	issued := f.version
	f.loading = true
	f.mu.Unlock()
	defer f.setLoading(false)

	entries, err := f.fetchRemote(ctx, query)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.version != issued {
		log.Debug().Str("mode", f.mode.String()).Msg("discarding stale fetch result")
		return nil
	}
	f.entries = entries
	return nil
}

func (f *Feed) fetchRemote(ctx context.Context, query string) ([]FoodEntry, error) {
	switch f.mode {
	case FeedPersonal:
		deviceID := f.client.DeviceID()
		if deviceID == "" {
			return nil, ErrDeviceIDNotAvailable
		}
		return rest.DeviceFeed(ctx, f.client.rest, deviceID, query)
	case FeedRandom:
		q := url.Values{}
		q.Set("order", "created_at.desc")
		q.Set("limit", strconv.Itoa(randomFeedLimit))
		return rest.ListEntries(ctx, f.client.rest, q)
	default: // FeedAll
		q := url.Values{}
		q.Set("order", "meal_date.desc")
		return rest.ListEntries(ctx, f.client.rest, q)
	}
}

// AddEntry creates a new entry, uploading the photo first when one is
// supplied. On success in personal mode the server-confirmed record is
// inserted and the list re-sorted by meal date descending. Cancellation
// during the photo step surfaces as ErrCancelled with the list untouched.
func (f *Feed) AddEntry(ctx context.Context, in AddEntryInput) error {
	deviceID := f.client.DeviceID()
	if deviceID == "" {
		return ErrDeviceIDNotAvailable
	}

	ctx, done := f.scoped(ctx)
	defer done()

	f.setLoading(true)
	defer func() {
		f.setLoading(false)
		f.clearProgress()
	}()

	var photoURL string
	if in.Photo != nil {
		u, err := f.uploadPhoto(ctx, in.Photo)
		if err != nil {
			return err
		}
		photoURL = u
	}

	entry := FoodEntry{
		ID:          uuid.NewString(),
		DeviceID:    deviceID,
		Title:       in.Title,
		Description: in.Description,
		PhotoURL:    photoURL,
		MealType:    in.MealType,
		Ingredients: types.FilterIngredients(in.Ingredients),
		DateCreated: time.Now().UTC(),
		MealDate:    in.MealDate,
	}

	created, err := rest.CreateEntry(ctx, f.client.rest, entry)
	if err != nil {
		return err
	}
	log.Debug().Str("id", created.ID).Str("mode", f.mode.String()).Msg("entry created")

	if f.mode == FeedPersonal {
		f.mu.Lock()
		f.entries = append([]FoodEntry{*created}, f.entries...)
		sortByMealDateDesc(f.entries)
		f.version++
		f.mu.Unlock()
	}
	return nil
}

// uploadPhoto runs the external processor, walks the simulated progress
// ramp and hands the bytes to the uploader. The ramp is a coarse
// client-side simulation; the storage API exposes no transfer progress.
func (f *Feed) uploadPhoto(ctx context.Context, raw []byte) (string, error) {
	f.setProgress(0)

	processed, err := f.process(raw)
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrCancelled
		}
		return "", ErrInvalidImageData
	}
	if len(processed) == 0 {
		return "", ErrInvalidImageData
	}

	for p := 0.1; p < 0.95; p += 0.1 {
		f.setProgress(p)
		select {
		case <-ctx.Done():
			return "", ErrCancelled
		case <-time.After(f.progressTick):
		}
	}

	u, err := f.uploader.UploadImage(ctx, processed)
	if err != nil {
		return "", err
	}
	f.setProgress(1.0)
	return u, nil
}

// UpdateEntry re-submits the full record as a replace. On success in
// personal mode the matching local record is replaced by id and the list
// re-sorted; no other entry's identity changes.
func (f *Feed) UpdateEntry(ctx context.Context, e FoodEntry) error {
	ctx, done := f.scoped(ctx)
	defer done()

	f.setLoading(true)
	defer f.setLoading(false)

	updated, err := rest.UpdateEntry(ctx, f.client.rest, e)
	if err != nil {
		return err
	}

	if f.mode == FeedPersonal {
		f.mu.Lock()
		for i := range f.entries {
			if f.entries[i].ID == updated.ID {
				f.entries[i] = *updated
				break
			}
		}
		sortByMealDateDesc(f.entries)
		f.version++
		f.mu.Unlock()
	}
	return nil
}

// DeleteEntry removes the entry by id. On success in personal mode exactly
// the matching local record is removed; deleting an id that is already
// gone leaves the list unchanged.
func (f *Feed) DeleteEntry(ctx context.Context, e FoodEntry) error {
	ctx, done := f.scoped(ctx)
	defer done()

	f.setLoading(true)
	defer f.setLoading(false)

	if err := rest.DeleteEntry(ctx, f.client.rest, e.ID); err != nil {
		return err
	}

	if f.mode == FeedPersonal {
		f.mu.Lock()
		kept := f.entries[:0]
		for _, existing := range f.entries {
			if existing.ID != e.ID {
				kept = append(kept, existing)
			}
		}
		f.entries = kept
		f.version++
		f.mu.Unlock()
	}
	return nil
}

// scoped derives a request context cancelled by either the caller or the
// feed's own teardown.
func (f *Feed) scoped(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(f.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (f *Feed) setLoading(v bool) {
	f.mu.Lock()
	f.loading = v
	f.mu.Unlock()
}

func (f *Feed) setProgress(p float64) {
	f.mu.Lock()
	f.progress = p
	f.progressSet = true
	f.mu.Unlock()
}

func (f *Feed) clearProgress() {
	f.mu.Lock()
	f.progress = 0
	f.progressSet = false
	f.mu.Unlock()
}

func sortByMealDateDesc(entries []FoodEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MealDate.After(entries[j].MealDate)
	})
}
