package parser

import (
	"reflect"
	"testing"
)

func TestFindTags_Basic(t *testing.T) {
	got := FindTags("intro #project-a mid #work/notes end #c++")
	want := []string{"#project-a", "#work/notes", "#c++"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTags = %v, want %v", got, want)
	}
}

func TestFindTags_CaseVariantsAreDistinct(t *testing.T) {
	got := FindTags("see #project-a and #Project-A")
	want := []string{"#project-a", "#Project-A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTags = %v, want %v", got, want)
	}
}

func TestFindTags_Dedup(t *testing.T) {
	got := FindTags("#x once #x twice #x")
	if len(got) != 1 || got[0] != "#x" {
		t.Errorf("FindTags = %v, want [#x]", got)
	}
}

func TestFindTags_ContentUnaware(t *testing.T) {
	// Tags inside code spans are matched too; extraction is raw-text.
	got := FindTags("`code #inline-code` and http://host/#anchor")
	want := []string{"#inline-code", "#anchor"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindTags = %v, want %v", got, want)
	}
}

func TestFindTags_None(t *testing.T) {
	if got := FindTags("no tags here # not-a-tag-start"); len(got) != 0 {
		t.Errorf("FindTags = %v, want none", got)
	}
}
