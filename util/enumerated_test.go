package util

import "testing"

func TestEnumSetRoundTrip(t *testing.T) {
	e := NewEnumSet(4)
	values := []string{"p:NOUN", "pl:NOUN_dog", "agr:PRON_3_sing_masc_nom"}
	for i, v := range values {
		enum, added := e.Add(v)
		if !added {
			t.Error("Value", v, "reported as existing on first add")
		}
		if enum != i {
			t.Error("Got id", enum, "expected", i)
		}
	}
	for i := 0; i < e.Len(); i++ {
		v, exists := e.ValueOf(i)
		if !exists {
			t.Error("Assigned id", i, "not found")
			continue
		}
		enum, exists := e.IndexOf(v)
		if !exists || enum != i {
			t.Error("Round trip of id", i, "got", enum)
		}
	}
}

func TestEnumSetStableIds(t *testing.T) {
	e := NewEnumSet(2)
	first, _ := e.Add("p:VERB")
	second, added := e.Add("p:VERB")
	if added {
		t.Error("Re-add reported as new")
	}
	if first != second {
		t.Error("Id changed on re-add:", first, "then", second)
	}
}

func TestEnumSetNotFound(t *testing.T) {
	e := NewEnumSet(1)
	e.Add("p:ADV")
	if _, exists := e.IndexOf("p:INTJ"); exists {
		t.Error("Unassigned value reported as found")
	}
	if _, exists := e.ValueOf(7); exists {
		t.Error("Out of range id reported as found")
	}
	if _, exists := e.ValueOf(-1); exists {
		t.Error("Negative id reported as found")
	}
}

func TestEnumSetFrozen(t *testing.T) {
	e := NewEnumSet(1)
	e.Add("p:ADP")
	e.Freeze()
	defer func() {
		if recover() == nil {
			t.Error("Add to frozen set did not panic")
		}
	}()
	e.Add("p:DET")
}

func TestEnumSetRebuildIndex(t *testing.T) {
	e := NewEnumSet(2)
	e.Add("a")
	e.Add("b")
	e.Index = nil
	e.RebuildIndex()
	if v, _ := e.ValueOf(1); v != "b" {
		t.Error("Got", v, "expected b after rebuild")
	}
}
