package matching

import (
	"errors"
	"testing"

	fontkit "github.com/Aloxaf/font-kit"
	"github.com/Aloxaf/font-kit/internal/fonttest"
	"github.com/Aloxaf/font-kit/loaders/gotext"
	"github.com/Aloxaf/font-kit/loaders/xsfnt"
	"github.com/Aloxaf/font-kit/sources/mem"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// stubFace answers the match-relevant questions only.
type stubFace struct {
	fontkit.Face
	family, psname string
	props          fontkit.Properties
}

func (f stubFace) FamilyName() string             { return f.family }
func (f stubFace) PostScriptName() string         { return f.psname }
func (f stubFace) Properties() fontkit.Properties { return f.props }

// stubSource holds stub faces, addressed by path handles "family/psname".
// It records every family requested.
type stubSource struct {
	families  map[string][]stubFace
	order     []string
	requested []string
}

func newStubSource() *stubSource {
	return &stubSource{families: make(map[string][]stubFace)}
}

func (s *stubSource) add(family, psname string, p fontkit.Properties) {
	if _, ok := s.families[family]; !ok {
		s.order = append(s.order, family)
	}
	s.families[family] = append(s.families[family], stubFace{family: family, psname: psname, props: p})
}

func (s *stubSource) AllFamilies() ([]string, error) {
	return s.order, nil
}

func (s *stubSource) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	s.requested = append(s.requested, name)
	faces, ok := s.families[name]
	if !ok {
		return fontkit.FamilyHandle{}, fontkit.ErrNotFound
	}
	fh := fontkit.FamilyHandle{}
	for _, f := range faces {
		fh.Add(fontkit.PathHandle(name+"/"+f.psname, 0))
	}
	return fh, nil
}

var errBroken = errors.New("broken font")

func (s *stubSource) load(h fontkit.Handle) (fontkit.Face, error) {
	for name, faces := range s.families {
		for _, f := range faces {
			if h.Path() == name+"/"+f.psname {
				if f.psname == "broken" {
					return nil, errBroken
				}
				return f, nil
			}
		}
	}
	return nil, fontkit.ErrIO
}

// --- Stub tests ------------------------------------------------------------

type MatcherSuite struct {
	suite.Suite
	teardown func()
	src      *stubSource
	matcher  *Matcher
}

func TestMatcher(t *testing.T) {
	suite.Run(t, new(MatcherSuite))
}

func (s *MatcherSuite) SetupTest() {
	s.teardown = gotestingadapter.QuickConfig(s.T(), "fontkit.matching")
	s.src = newStubSource()
	s.src.add("Example", "Example-Regular", fontkit.DefaultProperties())
	s.src.add("Example", "Example-Bold", fontkit.DefaultProperties().WithWeight(fontkit.WeightBold))
	s.src.add("Example", "Example-Italic", fontkit.DefaultProperties().WithStyle(fontkit.StyleItalic))
	s.matcher = NewMatcher(s.src, s.src.load)
}

func (s *MatcherSuite) TearDownTest() {
	s.teardown()
}

func (s *MatcherSuite) TestStyleOutranksWeight() {
	spec := fontkit.NewSpec(
		fontkit.DefaultProperties().WithStyle(fontkit.StyleItalic).WithWeight(fontkit.WeightBold),
		fontkit.FamilyName("Example"),
	)
	h, err := s.matcher.SelectBestMatch(spec)
	s.Require().NoError(err)
	s.Equal("Example/Example-Italic", h.Path())
}

func (s *MatcherSuite) TestFallThroughToGenericFamily() {
	spec := fontkit.NewSpec(fontkit.DefaultProperties(),
		fontkit.FamilyName("Nonexistent"), fontkit.FamilyGeneric(fontkit.SansSerif))
	_, err := s.matcher.SelectBestMatch(spec)
	s.ErrorIs(err, fontkit.ErrNotFound)
	s.Equal([]string{"Nonexistent", "Arial"}, s.src.requested)
	//
	s.src.requested = nil
	matcher := NewMatcher(s.src, s.src.load, WithDefaultFamilies(DefaultFamilies{
		fontkit.SansSerif: "Example",
	}))
	h, err := matcher.SelectBestMatch(spec)
	s.Require().NoError(err)
	s.Equal("Example/Example-Regular", h.Path())
	s.Equal([]string{"Nonexistent", "Example"}, s.src.requested)
}

func (s *MatcherSuite) TestUnmappedGenericFamily() {
	matcher := NewMatcher(s.src, s.src.load, WithDefaultFamilies(DefaultFamilies{}))
	_, err := matcher.SelectFamilyBySpec(fontkit.FamilyGeneric(fontkit.Serif))
	s.ErrorIs(err, fontkit.ErrNotFound)
	s.Empty(s.src.requested)
}

func (s *MatcherSuite) TestFirstResolvedFamilyWins() {
	s.src.add("Other", "Other-Bold", fontkit.DefaultProperties().WithWeight(fontkit.WeightBold))
	spec := fontkit.NewSpec(fontkit.DefaultProperties().WithWeight(fontkit.WeightBold),
		fontkit.FamilyName("Other"), fontkit.FamilyName("Example"))
	h, err := s.matcher.SelectBestMatch(spec)
	s.Require().NoError(err)
	s.Equal("Other/Other-Bold", h.Path())
	// a resolved family is used even if it fits badly
	spec.Properties = fontkit.DefaultProperties().WithStyle(fontkit.StyleItalic)
	h, err = s.matcher.SelectBestMatch(spec)
	s.Require().NoError(err)
	s.Equal("Other/Other-Bold", h.Path())
}

func (s *MatcherSuite) TestBrokenFontsAreSkipped() {
	s.src.add("Fragile", "broken", fontkit.DefaultProperties())
	s.src.add("Fragile", "Fragile-Bold", fontkit.DefaultProperties().WithWeight(fontkit.WeightBold))
	fh, err := s.matcher.SelectFamilyBySpec(fontkit.FamilyName("Fragile"))
	s.Require().NoError(err)
	fields, err := s.matcher.SelectMatchFieldsForFamily(fh)
	s.Require().NoError(err)
	s.Len(fields, 1)
	h, err := s.matcher.SelectBestMatch(fontkit.NewSpec(fontkit.DefaultProperties(), fontkit.FamilyName("Fragile")))
	s.Require().NoError(err)
	s.Equal("Fragile/Fragile-Bold", h.Path())
	// a family of broken fonts only falls through
	s.src.add("Shattered", "broken", fontkit.DefaultProperties())
	h, err = s.matcher.SelectBestMatch(fontkit.NewSpec(fontkit.DefaultProperties(),
		fontkit.FamilyName("Shattered"), fontkit.FamilyName("Example")))
	s.Require().NoError(err)
	s.Equal("Example/Example-Regular", h.Path())
}

func (s *MatcherSuite) TestEmptySpec() {
	_, err := s.matcher.SelectBestMatch(fontkit.Spec{Properties: fontkit.DefaultProperties()})
	s.ErrorIs(err, fontkit.ErrNotFound)
}

func (s *MatcherSuite) TestLinearPostScriptNameScan() {
	h, err := s.matcher.SelectByPostScriptName("Example-Bold")
	s.Require().NoError(err)
	s.Equal("Example/Example-Bold", h.Path())
	_, err = s.matcher.SelectByPostScriptName("Example-Black")
	s.ErrorIs(err, fontkit.ErrNotFound)
}

func (s *MatcherSuite) TestSelectAllFonts() {
	s.src.add("Other", "Other-Regular", fontkit.DefaultProperties())
	handles, err := s.matcher.SelectAllFonts()
	s.Require().NoError(err)
	paths := make([]string, len(handles))
	for i, h := range handles {
		paths[i] = h.Path()
	}
	expected := []string{"Example/Example-Regular", "Example/Example-Bold",
		"Example/Example-Italic", "Other/Other-Regular"}
	if diff := cmp.Diff(expected, paths); diff != "" {
		s.Failf("unexpected fonts", "(-want +got):\n%s", diff)
	}
}

// --- Configuration ---------------------------------------------------------

func TestDefaultFamiliesFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.matching")
	defer teardown()
	//
	conf := testconfig.Conf{
		"fonts.sans-serif": "Go",
		"fonts.monospace":  "Go Mono",
		"fonts.fantasy":    "",
	}
	df := DefaultFamiliesFromConfig(conf)
	expected := DefaultFamilies{
		fontkit.Serif:     "Times New Roman",
		fontkit.SansSerif: "Go",
		fontkit.Monospace: "Go Mono",
		fontkit.Cursive:   "Comic Sans MS",
		fontkit.Fantasy:   "Papyrus",
	}
	if diff := cmp.Diff(expected, df); diff != "" {
		t.Errorf("default families differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, BuiltinDefaultFamilies(), DefaultFamiliesFromConfig(nil))
	assert.Equal(t, "fonts.cursive", ConfigKey(fontkit.Cursive))
	name, ok := df.Resolve(fontkit.FamilyName("Anything"))
	assert.True(t, ok)
	assert.Equal(t, "Anything", name)
}

// --- Go fonts --------------------------------------------------------------

func goFontMatcher(t *testing.T, load fontkit.Loader) *Matcher {
	src := mem.New(load)
	for _, data := range [][]byte{fonttest.GoRegular, fonttest.GoItalic, fonttest.GoBold,
		fonttest.GoBoldItalic, fonttest.GoMono} {
		_, err := src.AddFont(data)
		require.NoError(t, err)
	}
	return NewMatcher(src, load, WithDefaultFamilies(DefaultFamiliesFromConfig(testconfig.Conf{
		"fonts.sans-serif": "Go",
		"fonts.monospace":  "Go Mono",
	})))
}

func TestGoFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontkit.matching")
	defer teardown()
	//
	tests := []struct {
		families []fontkit.FamilySpec
		props    fontkit.Properties
		expected string
	}{
		{[]fontkit.FamilySpec{fontkit.FamilyGeneric(fontkit.SansSerif)},
			fontkit.DefaultProperties(), "GoRegular"},
		{[]fontkit.FamilySpec{fontkit.FamilyName("go")},
			fontkit.DefaultProperties().WithWeight(fontkit.WeightBold), "Go-Bold"},
		{[]fontkit.FamilySpec{fontkit.FamilyName("Go")},
			fontkit.DefaultProperties().WithWeight(fontkit.WeightMedium), "GoRegular"},
		{[]fontkit.FamilySpec{fontkit.FamilyName("Go")},
			fontkit.DefaultProperties().WithStyle(fontkit.StyleOblique), "Go-Italic"},
		{[]fontkit.FamilySpec{fontkit.FamilyName("Go")},
			fontkit.DefaultProperties().WithStyle(fontkit.StyleItalic).WithWeight(fontkit.WeightBlack),
			"Go-BoldItalic"},
		{[]fontkit.FamilySpec{fontkit.FamilyName("Helvetica"), fontkit.FamilyGeneric(fontkit.Monospace)},
			fontkit.DefaultProperties().WithWeight(fontkit.WeightBold), "GoMono"},
	}
	for _, load := range []fontkit.Loader{xsfnt.Load, gotext.Load} {
		m := goFontMatcher(t, load)
		for _, tt := range tests {
			h, err := m.SelectBestMatch(fontkit.NewSpec(tt.props, tt.families...))
			require.NoError(t, err)
			face, err := load(h)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, face.PostScriptName(), "%v in %v", tt.props, tt.families)
		}
		_, err := m.SelectBestMatch(fontkit.NewSpec(fontkit.DefaultProperties(),
			fontkit.FamilyGeneric(fontkit.Serif)))
		assert.ErrorIs(t, err, fontkit.ErrNotFound)
		h, err := m.SelectByPostScriptName("Go-BoldItalic")
		require.NoError(t, err)
		assert.Equal(t, []byte(fonttest.GoBoldItalic), h.Bytes())
	}
}
