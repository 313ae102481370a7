package fold

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/asynckit-go/asynckit/collection"
	"github.com/asynckit-go/asynckit/commonerrors"
)

// IsOrderedSequence validates that a value is a usable ordered sequence i.e.
// a non-nil slice.
func IsOrderedSequence() validation.Rule {
	return validation.By(func(vRaw any) error {
		val := reflect.ValueOf(vRaw)
		if !val.IsValid() || val.Kind() != reflect.Slice || val.IsNil() {
			return commonerrors.New(commonerrors.ErrInvalid, "reduce must be called on an ordered sequence")
		}
		return nil
	})
}

// IsCallable validates that a value is a callable i.e. a non-nil function.
// The parameter name is reported in the failure description.
func IsCallable(name string) validation.Rule {
	return validation.By(func(vRaw any) error {
		val := reflect.ValueOf(vRaw)
		if !val.IsValid() || val.Kind() != reflect.Func || val.IsNil() {
			return commonerrors.Newf(commonerrors.ErrUndefined, "%v must be a function", name)
		}
		return nil
	})
}

// validate applies the input contract in order and fails on the first
// violation, before any iteration work starts.
func (it *iteration[T]) validate(initial *T) error {
	err := validation.Validate(it.slots, IsOrderedSequence())
	if err != nil {
		return err
	}
	err = validation.Validate(it.step, IsCallable("step function"))
	if err != nil {
		return err
	}
	err = validation.Validate(it.onComplete, IsCallable("completion callback"))
	if err != nil {
		return err
	}
	if initial == nil {
		if collection.CountPresent(it.slots) == 0 {
			return commonerrors.New(commonerrors.ErrInvalid, "cannot reduce an empty collection with no initial value")
		}
	}
	return nil
}
