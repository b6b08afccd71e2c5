package scf

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-plan.xml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Contains(t, err.Error(), "no-such-plan.xml")
}

func TestLoadMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xml")
	require.NoError(t, os.WriteFile(path, []byte("<raml><cmData></raml>"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadParsesPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.xml")
	content := `<?xml version="1.0" encoding="UTF-8"?>
<raml version="2.1" xmlns="raml21.xsd">
  <cmData type="plan">
    <managedObject class="NOKLTE:CELL" distName="MRBTS-1/AIOSC-1/CELL-1"/>
    <managedObject class="NOKLTE:CELL" distName="MRBTS-1/AIOSC-1/CELL-2"/>
  </cmData>
</raml>`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ManagedObjects(doc), 2)
}

func buildTestInventory() *Inventory {
	inv := NewInventory()

	root := &ManagedObject{Class: testRootClass, Operation: "create"}
	root.Params.Set("name", "site-1")
	inv.Put(testRootClass, "MRBTS-1/AIOSC-1", root)

	cell := &ManagedObject{Class: "NOKLTE:CELL"}
	cell.Params.Set("txPower", "43")
	cell.Params.Set("adminState", "unlocked")
	inv.Put("NOKLTE:CELL", "CELL-1", cell)

	alarm := &ManagedObject{Class: "NOKLTE:ALARM", Operation: "create"}
	inv.Put("NOKLTE:ALARM", "Device-1/FaultMgmt-1/SupportedAlarm-1", alarm)

	return inv
}

func TestBuildPlanStructure(t *testing.T) {
	ctx := NewRunContext()
	ctx.captureRootPrefix("MRBTS-1/AIOSC-1")
	ctx.captureDefaultID("10500")

	doc := BuildPlan(buildTestInventory(), ctx, BuildOptions{
		Version:   "SBTS24R1",
		PlanName:  "merged_plan",
		RootClass: testRootClass,
	})

	raml := doc.SelectElement("raml")
	require.NotNil(t, raml)
	require.Equal(t, "2.1", raml.SelectAttrValue("version", ""))
	require.Equal(t, "raml21.xsd", raml.SelectAttrValue("xmlns", ""))

	cmData := raml.SelectElement("cmData")
	require.NotNil(t, cmData)
	require.Equal(t, "plan", cmData.SelectAttrValue("type", ""))
	require.Equal(t, "all", cmData.SelectAttrValue("scope", ""))
	require.Equal(t, "merged_plan", cmData.SelectAttrValue("name", ""))

	mos := cmData.SelectElements("managedObject")
	require.Len(t, mos, 3)

	// Root object keeps its leaf as the full distName
	require.Equal(t, testRootClass, mos[0].SelectAttrValue("class", ""))
	require.Equal(t, "MRBTS-1/AIOSC-1", mos[0].SelectAttrValue("distName", ""))

	// Ordinary objects are placed under the captured prefix
	require.Equal(t, "MRBTS-1/AIOSC-1/CELL-1", mos[1].SelectAttrValue("distName", ""))
	require.Equal(t, "create", mos[1].SelectAttrValue("operation", ""), "missing operation should default")
	require.Equal(t, "MRBTS-1/AIOSC-1/Device-1/FaultMgmt-1/SupportedAlarm-1", mos[2].SelectAttrValue("distName", ""))

	// Every object carries the uniform plan version and the run's id
	for _, mo := range mos {
		require.Equal(t, "SBTS24R1", mo.SelectAttrValue("version", ""))
		require.Equal(t, "10500", mo.SelectAttrValue("id", ""))
	}

	params := mos[1].SelectElements("p")
	require.Len(t, params, 2)
	require.Equal(t, "txPower", params[0].SelectAttrValue("name", ""))
	require.Equal(t, "43", params[0].Text())
	require.Equal(t, "adminState", params[1].SelectAttrValue("name", ""))
	require.Equal(t, "unlocked", params[1].Text())
}

func TestBuildPlanWithoutCaptures(t *testing.T) {
	inv := NewInventory()
	cell := &ManagedObject{Class: "NOKLTE:CELL", Operation: "create"}
	inv.Put("NOKLTE:CELL", "CELL-1", cell)

	doc := BuildPlan(inv, NewRunContext(), BuildOptions{
		Version:   "SBTS24R1",
		PlanName:  "plan",
		RootClass: testRootClass,
	})

	mos := ManagedObjects(doc)
	require.Len(t, mos, 1)
	require.Equal(t, "CELL-1", mos[0].SelectAttrValue("distName", ""), "no prefix captured, leaf stands alone")
	require.Equal(t, FallbackID, mos[0].SelectAttrValue("id", ""))
}

func TestBuildPlanRoundTrip(t *testing.T) {
	inv := buildTestInventory()
	ctx := NewRunContext()
	ctx.captureRootPrefix("MRBTS-1/AIOSC-1")
	ctx.captureDefaultID("10500")

	doc := BuildPlan(inv, ctx, BuildOptions{
		Version:   "SBTS24R1",
		PlanName:  "merged_plan",
		RootClass: testRootClass,
	})
	serialized, err := doc.WriteToString()
	require.NoError(t, err)

	reparsed := parseDoc(t, serialized)
	got := newTestFlattener(NewRunContext()).Flatten(reparsed)

	require.Equal(t, inv.Classes(), got.Classes())
	for _, class := range inv.Classes() {
		require.Equal(t, inv.Leaves(class), got.Leaves(class), "leaves of %s", class)
		for _, leaf := range inv.Leaves(class) {
			want, _ := inv.Get(class, leaf)
			obj, ok := got.Get(class, leaf)
			require.True(t, ok)
			require.Equal(t, want.Params.Names(), obj.Params.Names())
			for _, name := range want.Params.Names() {
				wantValue, _ := want.Params.Get(name)
				gotValue, _ := obj.Params.Get(name)
				require.Equal(t, wantValue, gotValue, "%s/%s %s", class, leaf, name)
			}
		}
	}
}

func TestWritePlan(t *testing.T) {
	ctx := NewRunContext()
	ctx.captureRootPrefix("MRBTS-1/AIOSC-1")
	doc := BuildPlan(buildTestInventory(), ctx, BuildOptions{
		Version:   "SBTS24R1",
		PlanName:  "merged_plan",
		RootClass: testRootClass,
	})

	path := filepath.Join(t.TempDir(), "merged.xml")
	require.NoError(t, WritePlan(doc, path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, ManagedObjects(reloaded), 3)
}
