package normalize

import (
	"testing"

	"mediq/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestQualifications(t *testing.T) {
	t.Parallel()

	const year = 2026

	t.Run("comma separated string yields one trimmed entry per segment", func(t *testing.T) {
		t.Parallel()

		got := Qualifications("MBBS, MD , FRCS", year)

		assert.Equal(t, []entity.Qualification{
			{Degree: "MBBS", Institution: "To be updated", Year: year},
			{Degree: "MD", Institution: "To be updated", Year: year},
			{Degree: "FRCS", Institution: "To be updated", Year: year},
		}, got)
	})

	t.Run("array of strings wraps each element", func(t *testing.T) {
		t.Parallel()

		got := Qualifications([]any{"MBBS", " MD "}, year)

		assert.Equal(t, []entity.Qualification{
			{Degree: "MBBS", Institution: "To be updated", Year: year},
			{Degree: "MD", Institution: "To be updated", Year: year},
		}, got)
	})

	t.Run("already normalized slice passes through unchanged", func(t *testing.T) {
		t.Parallel()

		input := []entity.Qualification{
			{Degree: "MD", Institution: "AIIMS", Year: 2015},
			{Degree: "DM", Institution: "PGIMER", Year: 2019},
		}

		got := Qualifications(input, year)

		assert.Equal(t, input, got)
	})

	t.Run("array of objects keeps provided fields", func(t *testing.T) {
		t.Parallel()

		got := Qualifications([]any{
			map[string]any{"degree": "MD", "institution": "AIIMS", "year": float64(2015)},
		}, year)

		assert.Equal(t, []entity.Qualification{
			{Degree: "MD", Institution: "AIIMS", Year: 2015},
		}, got)
	})

	t.Run("single object is wrapped in one element slice", func(t *testing.T) {
		t.Parallel()

		got := Qualifications(map[string]any{"degree": "MD"}, year)

		assert.Equal(t, []entity.Qualification{
			{Degree: "MD", Institution: "To be updated", Year: year},
		}, got)
	})

	t.Run("nil input yields empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Qualifications(nil, year))
	})
}

func TestStringList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  []string
	}{
		{
			name:  "comma separated string",
			input: "Cardiology, Neurology ,Pediatrics",
			want:  []string{"Cardiology", "Neurology", "Pediatrics"},
		},
		{
			name:  "array passes through",
			input: []any{"English", "Hindi"},
			want:  []string{"English", "Hindi"},
		},
		{
			name:  "string slice is trimmed",
			input: []string{" English ", "Hindi"},
			want:  []string{"English", "Hindi"},
		},
		{
			name:  "scalar becomes single element",
			input: float64(7),
			want:  []string{"7"},
		},
		{
			name:  "nil yields empty slice",
			input: nil,
			want:  []string{},
		},
		{
			name:  "blank segments are dropped",
			input: "Cardiology,, ,Neurology",
			want:  []string{"Cardiology", "Neurology"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, StringList(tt.input))
		})
	}
}

func TestHospitalAffiliations(t *testing.T) {
	t.Parallel()

	t.Run("comma separated string marks each entry current", func(t *testing.T) {
		t.Parallel()

		got := HospitalAffiliations("Apollo, Fortis")

		assert.Equal(t, []entity.HospitalAffiliation{
			{Name: "Apollo", Address: "To be updated", Current: true},
			{Name: "Fortis", Address: "To be updated", Current: true},
		}, got)
	})

	t.Run("already normalized slice passes through unchanged", func(t *testing.T) {
		t.Parallel()

		input := []entity.HospitalAffiliation{
			{Name: "Apollo", Address: "Chennai", Current: false},
		}

		assert.Equal(t, input, HospitalAffiliations(input))
	})

	t.Run("object keeps explicit current flag", func(t *testing.T) {
		t.Parallel()

		got := HospitalAffiliations(map[string]any{
			"name":    "Apollo",
			"address": "Chennai",
			"current": false,
		})

		assert.Equal(t, []entity.HospitalAffiliation{
			{Name: "Apollo", Address: "Chennai", Current: false},
		}, got)
	})
}

func TestExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  int
	}{
		{name: "plain number", input: float64(12), want: 12},
		{name: "digit run inside string", input: "10+ years", want: 10},
		{name: "first digit run wins", input: "5 to 8 years", want: 5},
		{name: "no digits defaults to zero", input: "senior consultant", want: 0},
		{name: "absent defaults to zero", input: nil, want: 0},
		{name: "numeric string", input: "15", want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Experience(tt.input))
		})
	}
}

func TestConsultationFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  entity.ConsultationFee
	}{
		{
			name:  "bare number replicates to every channel",
			input: float64(500),
			want:  entity.ConsultationFee{InPerson: 500, Video: 500, Phone: 500},
		},
		{
			name:  "numeric string replicates to every channel",
			input: "750",
			want:  entity.ConsultationFee{InPerson: 750, Video: 750, Phone: 750},
		},
		{
			name:  "unparseable string defaults to zero",
			input: "call for pricing",
			want:  entity.ConsultationFee{},
		},
		{
			name:  "object with only in-person collapses to flat fee",
			input: map[string]any{"inPerson": float64(100)},
			want:  entity.ConsultationFee{InPerson: 100, Video: 100, Phone: 100},
		},
		{
			name:  "object with explicit channels is kept",
			input: map[string]any{"inPerson": float64(100), "video": float64(60), "phone": float64(40)},
			want:  entity.ConsultationFee{InPerson: 100, Video: 60, Phone: 40},
		},
		{
			name:  "missing in-person defaults to zero",
			input: map[string]any{"video": float64(60)},
			want:  entity.ConsultationFee{InPerson: 0, Video: 60, Phone: 0},
		},
		{
			name:  "absent fee is all zeros",
			input: nil,
			want:  entity.ConsultationFee{},
		},
		{
			name:  "typed fee passes through",
			input: entity.ConsultationFee{InPerson: 100, Video: 0, Phone: 0},
			want:  entity.ConsultationFee{InPerson: 100, Video: 0, Phone: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ConsultationFee(tt.input))
		})
	}
}

func TestNormalizationIsDeterministic(t *testing.T) {
	t.Parallel()

	input := []any{"MBBS", map[string]any{"degree": "MD", "year": float64(2018)}}

	first := Qualifications(input, 2026)
	second := Qualifications(input, 2026)

	assert.Equal(t, first, second)
}
