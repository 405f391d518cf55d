package diag

import (
	"testing"

	"vhdlsem/location"
)

func TestIssue_Accessors(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	span := location.Point(source, 10, 5)
	related := []location.RelatedInfo{
		{Span: location.Point(source, 5, 1), Message: "previous declaration here"},
	}
	details := []Detail{
		{Key: DetailKeyDesignator, Value: "clk"},
	}

	issue := Issue{
		span:       span,
		sourceName: "counter.vhd",
		path:       "counter_inst[WIDTH=>8]",
		severity:   Error,
		code:       E_DUPLICATE_DECL,
		message:    "entity already declared",
		hint:       "rename one of the declarations",
		related:    related,
		details:    details,
	}

	if got := issue.Severity(); got != Error {
		t.Errorf("Severity() = %v; want %v", got, Error)
	}
	if got := issue.Code(); got != E_DUPLICATE_DECL {
		t.Errorf("Code() = %v; want %v", got, E_DUPLICATE_DECL)
	}
	if got := issue.Message(); got != "entity already declared" {
		t.Errorf("Message() = %q; want %q", got, "entity already declared")
	}
	if got := issue.Span(); got != span {
		t.Errorf("Span() = %v; want %v", got, span)
	}
	if got := issue.SourceName(); got != "counter.vhd" {
		t.Errorf("SourceName() = %q; want %q", got, "counter.vhd")
	}
	if got := issue.Path(); got != "counter_inst[WIDTH=>8]" {
		t.Errorf("Path() = %q; want %q", got, "counter_inst[WIDTH=>8]")
	}
	if got := issue.Hint(); got != "rename one of the declarations" {
		t.Errorf("Hint() = %q; want %q", got, "rename one of the declarations")
	}
}

func TestIssue_HasSpan(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")

	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{
			name:  "zero issue",
			issue: Issue{},
			want:  false,
		},
		{
			name: "issue with span",
			issue: Issue{
				span:     location.Point(source, 1, 1),
				severity: Error,
				code:     E_NOT_DECLARED,
				message:  "test",
			},
			want: true,
		},
		{
			name: "issue without span",
			issue: Issue{
				sourceName: "counter_pkg",
				path:       "counter_inst[WIDTH=>8]",
				severity:   Error,
				code:       E_INSTANTIATE_FAILED,
				message:    "test",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.HasSpan(); got != tt.want {
				t.Errorf("HasSpan() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_IsZero(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")

	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{"zero value", Issue{}, true},
		{"only code set", Issue{code: E_NOT_DECLARED}, false},
		{"only message set", Issue{message: "test"}, false},
		{"only span set", Issue{span: location.Point(source, 1, 1)}, false},
		{"only sourceName set", Issue{sourceName: "counter_pkg"}, false},
		{"only path set", Issue{path: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.IsZero(); got != tt.want {
				t.Errorf("IsZero() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  bool
	}{
		{
			name:  "valid issue",
			issue: NewIssue(Error, E_NOT_DECLARED, "test").Build(),
			want:  true,
		},
		{
			name:  "zero code",
			issue: Issue{severity: Error, message: "test"},
			want:  false,
		},
		{
			name:  "empty message",
			issue: Issue{severity: Error, code: E_NOT_DECLARED},
			want:  false,
		},
		{
			name:  "invalid severity",
			issue: Issue{severity: Severity(255), code: E_NOT_DECLARED, message: "test"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_SpanPathClassification(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	span := location.Point(source, 1, 1)

	t.Run("schema-only: span present, no path", func(t *testing.T) {
		issue := NewIssue(Error, E_NOT_DECLARED, "test").WithSpan(span).Build()
		if !issue.IsSchemaOnly() {
			t.Error("expected IsSchemaOnly() to be true")
		}
		if issue.IsInstanceOnly() || issue.IsHybrid() {
			t.Error("span-only issue misclassified")
		}
	})

	t.Run("instance-only: path present, no span", func(t *testing.T) {
		issue := NewIssue(Error, E_INSTANTIATE_FAILED, "test").
			WithPath("counter_pkg", "counter_inst[WIDTH=>8]").Build()
		if !issue.IsInstanceOnly() {
			t.Error("expected IsInstanceOnly() to be true")
		}
		if issue.IsSchemaOnly() || issue.IsHybrid() {
			t.Error("path-only issue misclassified")
		}
	})

	t.Run("hybrid: both span and path present", func(t *testing.T) {
		issue := NewIssue(Error, E_INSTANTIATE_FAILED, "test").
			WithSpan(span).
			WithPath("counter_pkg", "counter_inst[WIDTH=>8]").Build()
		if !issue.IsHybrid() {
			t.Error("expected IsHybrid() to be true")
		}
		if issue.IsSchemaOnly() || issue.IsInstanceOnly() {
			t.Error("hybrid issue misclassified")
		}
	})
}

func TestIssue_Related_DefensiveCopy(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	issue := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithRelated(location.RelatedInfo{Span: location.Point(source, 1, 1), Message: "prev"}).
		Build()

	related := issue.Related()
	related[0].Message = "mutated"

	if issue.Related()[0].Message == "mutated" {
		t.Error("Related() did not return a defensive copy")
	}
}

func TestIssue_Details_DefensiveCopy(t *testing.T) {
	issue := NewIssue(Error, E_TYPE_MISMATCH, "test").
		WithDetail(DetailKeyTypeName, "integer").
		Build()

	details := issue.Details()
	details[0].Value = "mutated"

	if issue.Details()[0].Value == "mutated" {
		t.Error("Details() did not return a defensive copy")
	}
}

func TestIssue_Clone(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	original := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithRelated(location.RelatedInfo{Span: location.Point(source, 1, 1), Message: "prev"}).
		WithDetail(DetailKeyDesignator, "clk").
		Build()

	clone := original.Clone()

	if clone.Message() != original.Message() {
		t.Error("clone message mismatch")
	}

	clone.Related()[0].Message = "mutated"
	if original.Related()[0].Message == "mutated" {
		t.Error("mutating clone accessor affected original")
	}
}

func TestIssue_Related_NilWhenEmpty(t *testing.T) {
	issue := NewIssue(Error, E_NOT_DECLARED, "test").Build()
	if issue.Related() != nil {
		t.Error("Related() should be nil when no related info present")
	}
}

func TestIssue_Details_NilWhenEmpty(t *testing.T) {
	issue := NewIssue(Error, E_NOT_DECLARED, "test").Build()
	if issue.Details() != nil {
		t.Error("Details() should be nil when no details present")
	}
}
