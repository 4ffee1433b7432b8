package validate

import (
	"strings"
	"testing"

	"github.com/Eein/livesplit-core/model"
)

func validModel() *model.Model {
	return &model.Model{
		Library: "livesplit_core",
		Classes: map[string]*model.Class{
			"Timer": {
				StaticFns: []model.Function{
					{
						Name:   "Timer_new",
						Method: "new",
						Output: model.Type{Name: "Timer", Kind: model.KindValue, IsCustom: true},
					},
				},
				OwnFns: []model.Function{
					{
						Name:   "Timer_drop",
						Method: "drop",
						Inputs: []model.Param{
							{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindValue, IsCustom: true}},
						},
						Output: model.Type{Name: "()", Kind: model.KindValue},
					},
				},
				SharedFns: []model.Function{
					{
						Name:   "Timer_current_phase",
						Method: "current_phase",
						Inputs: []model.Param{
							{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindRef, IsCustom: true}},
						},
						Output: model.Type{Name: "i32", Kind: model.KindValue},
					},
				},
				MutFns: []model.Function{
					{
						Name:   "Timer_split",
						Method: "split",
						Inputs: []model.Param{
							{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindRefMut, IsCustom: true}},
						},
						Output: model.Type{Name: "()", Kind: model.KindValue},
					},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedModel(t *testing.T) {
	result := Validate(validModel())
	if !result.IsValid() {
		t.Errorf("well-formed model rejected:\n%s", result.Error())
	}
}

func expectError(t *testing.T, m *model.Model, fragment string) {
	t.Helper()
	result := Validate(m)
	if result.IsValid() {
		t.Fatalf("expected validation error containing %q", fragment)
	}
	if !strings.Contains(result.Error(), fragment) {
		t.Errorf("errors do not mention %q:\n%s", fragment, result.Error())
	}
}

func TestValidateMissingReceiver(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].SharedFns[0].Inputs = nil
	expectError(t, m, `must take a leading "this" input`)
}

func TestValidateReceiverKindMismatch(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].SharedFns[0].Inputs[0].Type.Kind = model.KindRefMut
	expectError(t, m, "receiver of a shared function must have kind")
}

func TestValidateReceiverClassMismatch(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].MutFns[0].Inputs[0].Type.Name = "Run"
	expectError(t, m, `receiver type "Run" does not match class "Timer"`)
}

func TestValidateStaticWithReceiver(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].StaticFns[0].Inputs = []model.Param{
		{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindValue, IsCustom: true}},
	}
	expectError(t, m, "must not take a receiver")
}

func TestValidateMisplacedReceiver(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].MutFns[0].Inputs = append(m.Classes["Timer"].MutFns[0].Inputs,
		model.Param{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindRef, IsCustom: true}})
	expectError(t, m, "receiver must be the first input")
}

func TestValidateDuplicateDrop(t *testing.T) {
	m := validModel()
	timer := m.Classes["Timer"]
	timer.OwnFns = append(timer.OwnFns, model.Function{
		Name:   "Timer_drop2",
		Method: "drop",
		Inputs: []model.Param{
			{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindValue, IsCustom: true}},
		},
		Output: model.Type{Name: "()", Kind: model.KindValue},
	})
	result := Validate(m)
	if result.IsValid() {
		t.Fatal("expected errors for duplicate destructor")
	}
	// Both the duplicate method name and the duplicate destructor trip.
	if !strings.Contains(result.Error(), "more than one destructor") {
		t.Errorf("missing destructor error:\n%s", result.Error())
	}
}

func TestValidateMisplacedDrop(t *testing.T) {
	m := validModel()
	timer := m.Classes["Timer"]
	timer.OwnFns = nil
	timer.MutFns = append(timer.MutFns, model.Function{
		Name:   "Timer_drop",
		Method: "drop",
		Inputs: []model.Param{
			{Name: "this", Type: model.Type{Name: "Timer", Kind: model.KindRefMut, IsCustom: true}},
		},
		Output: model.Type{Name: "()", Kind: model.KindValue},
	})
	expectError(t, m, "destructor must be declared in own_fns")
}

func TestValidateDropWithReturn(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].OwnFns[0].Output = model.Type{Name: "i32", Kind: model.KindValue}
	expectError(t, m, "destructor must not return a value")
}

func TestValidateUnknownPrimitive(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].SharedFns[0].Output = model.Type{Name: "int32", Kind: model.KindValue}
	expectError(t, m, `unknown type "int32"`)
}

func TestValidateUndeclaredCustomClass(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].StaticFns[0].Output = model.Type{Name: "Segment", Kind: model.KindValue, IsCustom: true}
	expectError(t, m, `custom type "Segment" is not a declared class`)
}

func TestValidateDuplicateEntryPoint(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].MutFns[0].Name = "Timer_current_phase"
	expectError(t, m, "duplicate native entry point")
}

func TestValidateDuplicateMethod(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].MutFns[0].Method = "current_phase"
	expectError(t, m, `duplicate method "current_phase"`)
}

func TestValidateNullablePrimitiveOutput(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].SharedFns[0].Output.IsNullable = true
	expectError(t, m, "cannot be nullable")
}

func TestValidateJsonIsNeverCustom(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].SharedFns[0].Output = model.Type{Name: "Json", Kind: model.KindValue, IsCustom: true}
	expectError(t, m, "Json cannot be a custom type")
}

func TestValidateEmptyLibrary(t *testing.T) {
	m := validModel()
	m.Library = ""
	expectError(t, m, "library name must not be empty")
}

func TestValidationErrorFormatting(t *testing.T) {
	m := validModel()
	m.Classes["Timer"].SharedFns[0].Inputs[0].Type.Kind = model.KindRefMut
	result := Validate(m)
	if result.IsValid() {
		t.Fatal("expected an error")
	}
	if !strings.HasPrefix(result.Errors[0].Path, "classes[Timer].shared_fns[0]") {
		t.Errorf("unexpected error path %q", result.Errors[0].Path)
	}
}
