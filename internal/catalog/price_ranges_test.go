package catalog

import "testing"

func TestDefaultPriceTable_CoversNonNegativePrices(t *testing.T) {
	table := DefaultPriceTable()

	if len(table) != 5 {
		t.Fatalf("expected 5 buckets, got %d", len(table))
	}
	if table[0].Min != 0 {
		t.Errorf("first bucket must start at 0, got %d", table[0].Min)
	}
	for i := 0; i < len(table)-1; i++ {
		if table[i].Max == nil {
			t.Fatalf("bucket %q is unbounded but not last", table[i].ID)
		}
		if *table[i].Max != table[i+1].Min {
			t.Errorf("bucket %q max %d does not meet %q min %d", table[i].ID, *table[i].Max, table[i+1].ID, table[i+1].Min)
		}
	}
	if table[len(table)-1].Max != nil {
		t.Errorf("last bucket must be unbounded")
	}
}

func TestDefaultPriceTable_ReturnsCopy(t *testing.T) {
	table := DefaultPriceTable()
	*table[0].Max = 1
	table[1].Label = "changed"

	fresh := DefaultPriceTable()
	if *fresh[0].Max != 20000 {
		t.Errorf("expected max 20000, got %d", *fresh[0].Max)
	}
	if fresh[1].Label != "KSh 20,000 - 40,000" {
		t.Errorf("expected original label, got %q", fresh[1].Label)
	}
}

func TestPriceTable_FindByID(t *testing.T) {
	table := DefaultPriceTable()

	r, ok := table.FindByID("20000-40000")
	if !ok {
		t.Fatal("expected bucket 20000-40000 to exist")
	}
	if r.Label != "KSh 20,000 - 40,000" || r.Min != 20000 || *r.Max != 40000 {
		t.Errorf("unexpected bucket %+v", r)
	}

	if _, ok := table.FindByID("100000+"); ok {
		t.Error("expected unknown bucket to be missing")
	}
}

func TestPriceTable_Select(t *testing.T) {
	table := DefaultPriceTable()

	got := table.Select([]string{"80000+", "unknown", "0-20000", "0-20000"})

	if len(got) != 2 || got[0].ID != "0-20000" || got[1].ID != "80000+" {
		t.Errorf("unexpected selection %+v", got)
	}
	if table.Select(nil) != nil {
		t.Error("expected nil selection for no ids")
	}
}
