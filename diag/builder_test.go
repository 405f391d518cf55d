package diag

import (
	"testing"

	"vhdlsem/location"
)

func TestNewIssue(t *testing.T) {
	issue := NewIssue(Error, E_NOT_DECLARED, "test message").Build()

	if issue.Severity() != Error {
		t.Errorf("Severity() = %v; want %v", issue.Severity(), Error)
	}
	if issue.Code() != E_NOT_DECLARED {
		t.Errorf("Code() = %v; want %v", issue.Code(), E_NOT_DECLARED)
	}
	if issue.Message() != "test message" {
		t.Errorf("Message() = %q; want %q", issue.Message(), "test message")
	}
	if !issue.IsValid() {
		t.Error("NewIssue should produce valid issue")
	}
}

func TestIssueBuilder_WithSpan(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	span := location.Point(source, 10, 5)

	issue := NewIssue(Error, E_NOT_DECLARED, "test").
		WithSpan(span).
		Build()

	if issue.Span() != span {
		t.Errorf("Span() = %v; want %v", issue.Span(), span)
	}
	if !issue.HasSpan() {
		t.Error("HasSpan() = false; want true")
	}
}

func TestIssueBuilder_WithPath(t *testing.T) {
	issue := NewIssue(Error, E_INSTANTIATE_FAILED, "test").
		WithPath("counter_pkg", "counter_inst[WIDTH=>8]").
		Build()

	if issue.SourceName() != "counter_pkg" {
		t.Errorf("SourceName() = %q; want %q", issue.SourceName(), "counter_pkg")
	}
	if issue.Path() != "counter_inst[WIDTH=>8]" {
		t.Errorf("Path() = %q; want %q", issue.Path(), "counter_inst[WIDTH=>8]")
	}
}

func TestIssueBuilder_WithHint(t *testing.T) {
	issue := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithHint("rename one of the declarations").
		Build()

	if issue.Hint() != "rename one of the declarations" {
		t.Errorf("Hint() = %q; want %q", issue.Hint(), "rename one of the declarations")
	}
}

func TestIssueBuilder_WithRelated(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	related1 := location.RelatedInfo{
		Span:    location.Point(source, 5, 1),
		Message: "previous declaration here",
	}
	related2 := location.RelatedInfo{
		Span:    location.Point(source, 10, 1),
		Message: "also declared here",
	}

	issue := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithRelated(related1).
		WithRelated(related2).
		Build()

	related := issue.Related()
	if len(related) != 2 {
		t.Fatalf("len(Related()) = %d; want 2", len(related))
	}
	if related[0].Message != "previous declaration here" {
		t.Errorf("Related()[0].Message = %q; want %q", related[0].Message, "previous declaration here")
	}
	if related[1].Message != "also declared here" {
		t.Errorf("Related()[1].Message = %q; want %q", related[1].Message, "also declared here")
	}
}

func TestIssueBuilder_WithRelated_Variadic(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	related := []location.RelatedInfo{
		{Span: location.Point(source, 5, 1), Message: "first"},
		{Span: location.Point(source, 10, 1), Message: "second"},
	}

	issue := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithRelated(related...).
		Build()

	got := issue.Related()
	if len(got) != 2 {
		t.Fatalf("len(Related()) = %d; want 2", len(got))
	}
}

func TestIssueBuilder_WithDetail(t *testing.T) {
	issue := NewIssue(Error, E_TYPE_MISMATCH, "test").
		WithDetail(DetailKeyTypeName, "integer").
		WithDetail(DetailKeyDesignator, "clk").
		Build()

	details := issue.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(details))
	}
	if details[0].Key != DetailKeyTypeName || details[0].Value != "integer" {
		t.Errorf("Details()[0] = %v; want {%q, %q}", details[0], DetailKeyTypeName, "integer")
	}
	if details[1].Key != DetailKeyDesignator || details[1].Value != "clk" {
		t.Errorf("Details()[1] = %v; want {%q, %q}", details[1], DetailKeyDesignator, "clk")
	}
}

func TestIssueBuilder_WithDetails(t *testing.T) {
	issue := NewIssue(Error, E_TYPE_MISMATCH, "test").
		WithDetails(Detail{Key: DetailKeyTypeName, Value: "integer"}).
		WithDetails(Detail{Key: DetailKeyDesignator, Value: "clk"}).
		Build()

	details := issue.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(details))
	}
}

func TestIssueBuilder_WithDetails_Variadic(t *testing.T) {
	details := TypeElement("state_t", "idle")

	issue := NewIssue(Error, E_NO_SUCH_ELEMENT, "test").
		WithDetails(details...).
		Build()

	got := issue.Details()
	if len(got) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(got))
	}
}

func TestIssueBuilder_WithExpectedGot(t *testing.T) {
	issue := NewIssue(Error, E_TYPE_MISMATCH, "test").
		WithExpectedGot("std_logic", "integer").
		Build()

	details := issue.Details()
	if len(details) != 2 {
		t.Fatalf("len(Details()) = %d; want 2", len(details))
	}
	if details[0].Key != DetailKeyExpected || details[0].Value != "std_logic" {
		t.Errorf("Details()[0] = %v; want expected=std_logic", details[0])
	}
	if details[1].Key != DetailKeyGot || details[1].Value != "integer" {
		t.Errorf("Details()[1] = %v; want got=integer", details[1])
	}
}

func TestIssueBuilder_FluentChaining(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")
	span := location.Point(source, 10, 5)
	related := location.RelatedInfo{
		Span:    location.Point(source, 5, 1),
		Message: "previous declaration",
	}

	issue := NewIssue(Error, E_DUPLICATE_DECL, `entity "clk" already declared`).
		WithSpan(span).
		WithHint("rename one of the declarations").
		WithRelated(related).
		WithDetails(Detail{Key: DetailKeyDesignator, Value: "clk"}).
		Build()

	if !issue.HasSpan() {
		t.Error("issue should have span")
	}
	if issue.Hint() == "" {
		t.Error("issue should have hint")
	}
	if len(issue.Related()) != 1 {
		t.Error("issue should have related info")
	}
	if len(issue.Details()) != 1 {
		t.Error("issue should have details")
	}
	if !issue.IsValid() {
		t.Error("issue should be valid")
	}
}

func TestIssueBuilder_BuildImmutability(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")

	builder := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithRelated(location.RelatedInfo{
			Span:    location.Point(source, 5, 1),
			Message: "original",
		}).
		WithDetails(Detail{Key: DetailKeyDesignator, Value: "original"})

	issue1 := builder.Build()

	builder.WithRelated(location.RelatedInfo{
		Span:    location.Point(source, 10, 1),
		Message: "added",
	})
	builder.WithDetails(Detail{Key: DetailKeyTypeName, Value: "added"})

	issue2 := builder.Build()

	if len(issue1.Related()) != 1 {
		t.Errorf("issue1 Related() len = %d; want 1 (builder modifications affected built issue)",
			len(issue1.Related()))
	}
	if len(issue1.Details()) != 1 {
		t.Errorf("issue1 Details() len = %d; want 1 (builder modifications affected built issue)",
			len(issue1.Details()))
	}

	if len(issue2.Related()) != 2 {
		t.Errorf("issue2 Related() len = %d; want 2", len(issue2.Related()))
	}
	if len(issue2.Details()) != 2 {
		t.Errorf("issue2 Details() len = %d; want 2", len(issue2.Details()))
	}
}

func TestIssueBuilder_BuildDeepCopy(t *testing.T) {
	source := location.MustNewSourceID("test://unit/counter.vhd")

	builder := NewIssue(Error, E_DUPLICATE_DECL, "test").
		WithRelated(location.RelatedInfo{
			Span:    location.Point(source, 5, 1),
			Message: "related",
		}).
		WithDetails(Detail{Key: DetailKeyTypeName, Value: "type"})

	issue := builder.Build()

	related := issue.Related()
	details := issue.Details()

	related[0].Message = "modified"
	details[0].Value = "modified"

	if issue.Related()[0].Message == "modified" {
		t.Error("modifying Related() return value affected issue")
	}
	if issue.Details()[0].Value == "modified" {
		t.Error("modifying Details() return value affected issue")
	}
}

func TestIssueBuilder_EmptySlices(t *testing.T) {
	issue := NewIssue(Error, E_NOT_DECLARED, "test").Build()

	if issue.Related() != nil {
		t.Error("Related() should be nil when no related info added")
	}
	if issue.Details() != nil {
		t.Error("Details() should be nil when no details added")
	}
}

func TestNewIssue_AllSeverities(t *testing.T) {
	severities := []Severity{Fatal, Error, Warning, Info, Hint}

	for _, sev := range severities {
		t.Run(sev.String(), func(t *testing.T) {
			issue := NewIssue(sev, E_NOT_DECLARED, "test").Build()
			if issue.Severity() != sev {
				t.Errorf("Severity() = %v; want %v", issue.Severity(), sev)
			}
			if !issue.IsValid() {
				t.Error("issue should be valid")
			}
		})
	}
}

func TestNewIssue_PanicOnInvalidSeverity(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with invalid severity should panic")
		}
	}()

	NewIssue(Severity(255), E_NOT_DECLARED, "test")
}

func TestNewIssue_PanicOnZeroCode(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with zero code should panic")
		}
	}()

	NewIssue(Error, Code{}, "test")
}

func TestNewIssue_PanicOnEmptyMessage(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with empty message should panic")
		}
	}()

	NewIssue(Error, E_NOT_DECLARED, "")
}

func TestNewIssue_PanicOnSeverityJustAboveHint(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewIssue with severity > Hint should panic")
		}
	}()

	NewIssue(Severity(5), E_NOT_DECLARED, "test") // Hint = 4, so 5 is invalid
}

func TestFromIssue_ValidatesInput(t *testing.T) {
	t.Run("panics on zero issue", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("FromIssue with zero issue should panic")
			}
		}()
		FromIssue(Issue{})
	})

	t.Run("panics on invalid issue (missing code)", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("FromIssue with invalid issue should panic")
			}
		}()
		invalid := Issue{
			severity: Error,
			message:  "test",
		}
		FromIssue(invalid)
	})

	t.Run("accepts valid issue", func(t *testing.T) {
		valid := NewIssue(Error, E_NOT_DECLARED, "test message").Build()
		builder := FromIssue(valid)
		if builder == nil {
			t.Error("FromIssue should return non-nil builder for valid issue")
		}
		rebuilt := builder.Build()
		if rebuilt.Message() != "test message" {
			t.Errorf("Message() = %q; want %q", rebuilt.Message(), "test message")
		}
	})
}
