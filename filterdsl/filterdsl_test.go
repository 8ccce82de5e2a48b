// Copyright (c) 2025 A Bit of Help, Inc.

package filterdsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyExpressionDropsNothing(t *testing.T) {
	f, err := Parse("")
	require.NoError(t, err)
	assert.False(t, f.DropsParent("uan"))
}

func TestParse_ParentWithChildrenRestrictsOnlyThatParent(t *testing.T) {
	f, err := Parse("uan(possibleLength,exampleNumber):pager(exampleNumber):fixedLine:nationalPrefix")
	require.NoError(t, err)

	assert.True(t, f.DropsChild("uan", "possibleLength"))
	assert.True(t, f.DropsChild("uan", "exampleNumber"))
	assert.False(t, f.DropsChild("uan", "nationalNumberPattern"))

	assert.True(t, f.DropsChild("pager", "exampleNumber"))
	assert.False(t, f.DropsChild("mobile", "exampleNumber"))

	assert.True(t, f.DropsParent("fixedLine"))
	assert.True(t, f.DropsChildless("nationalPrefix"))
}

func TestParse_BareChildAppliesToEveryParent(t *testing.T) {
	f, err := Parse("exampleNumber")
	require.NoError(t, err)
	assert.True(t, f.DropsChild("uan", "exampleNumber"))
	assert.True(t, f.DropsChild("mobile", "exampleNumber"))
	assert.True(t, f.DropsChild("fixedLine", "exampleNumber"))
}

func TestParse_UnknownTokenFails(t *testing.T) {
	_, err := Parse("bogusField")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeUnknownToken, fe.Code)
}

func TestParse_ChildlessFieldAsParentFails(t *testing.T) {
	_, err := Parse("nationalPrefix(exampleNumber)")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeChildlessAsParent, fe.Code)
}

func TestParse_ParentAsChildFails(t *testing.T) {
	_, err := Parse("fixedLine(mobile)")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeParentAsChild, fe.Code)
}

func TestParse_DuplicateParentFails(t *testing.T) {
	_, err := Parse("fixedLine:fixedLine")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeDuplicateGroup, fe.Code)
}

func TestParse_DuplicateChildUnderSameParentFails(t *testing.T) {
	_, err := Parse("uan(exampleNumber,exampleNumber)")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeDuplicateGroup, fe.Code)
}

func TestParse_ChildBothStandaloneAndUnderParentFails(t *testing.T) {
	_, err := Parse("exampleNumber:fixedLine(exampleNumber)")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeDuplicateGroup, fe.Code)

	_, err = Parse("fixedLine(exampleNumber):exampleNumber")
	require.Error(t, err)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeDuplicateGroup, fe.Code)
}

func TestParse_UnbalancedParenthesesFails(t *testing.T) {
	_, err := Parse("uan(exampleNumber")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeUnbalancedParens, fe.Code)

	_, err = Parse("uanexampleNumber)")
	require.Error(t, err)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeUnbalancedParens, fe.Code)
}

func TestParse_EmptyGroupFails(t *testing.T) {
	_, err := Parse("uan()")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeEmptyGroup, fe.Code)
}

func TestParse_AdjacentSeparatorsFail(t *testing.T) {
	_, err := Parse("fixedLine::mobile")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeBadSeparator, fe.Code)
}

func TestParse_LeadingSeparatorFails(t *testing.T) {
	_, err := Parse(":fixedLine")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeBadSeparator, fe.Code)
}

func TestParse_TrailingSeparatorFails(t *testing.T) {
	_, err := Parse("fixedLine:")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeBadSeparator, fe.Code)
}

func TestParse_AdjacentCommasInChildListFail(t *testing.T) {
	_, err := Parse("uan(exampleNumber,,possibleLength)")
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, CodeBadSeparator, fe.Code)
}
