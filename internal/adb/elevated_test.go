package adb

import "testing"

func TestElevatedCommandRender(t *testing.T) {
	cases := []struct {
		name string
		cmd  ElevatedCommand
		want string
	}{
		{
			"copy",
			CopyCommand("/sdcard/WordWise.en.B01X._abc.db", "/data/data/com.amazon.kindle/databases/WordWise.en.B01X._abc.db"),
			"cp /sdcard/WordWise.en.B01X._abc.db /data/data/com.amazon.kindle/databases/WordWise.en.B01X._abc.db",
		},
		{
			"chown",
			ChownCommand("u0_a123", "/data/data/com.amazon.kindle/databases/WordWise.en.B01X._abc.db"),
			"chown u0_a123:u0_a123 /data/data/com.amazon.kindle/databases/WordWise.en.B01X._abc.db",
		},
		{
			"chcon",
			ChconCommand("u:object_r:app_data_file:s0", "/data/data/com.amazon.kindle/databases/WordWise.en.B01X._abc.db"),
			"chcon u:object_r:app_data_file:s0 /data/data/com.amazon.kindle/databases/WordWise.en.B01X._abc.db",
		},
		{
			"list",
			ListCommand("/data/data/com.amazon.kindle/databases/"),
			"ls -ldZ /data/data/com.amazon.kindle/databases/",
		},
		{
			"quoted path",
			CopyCommand("/sdcard/My Book.db", "/data/local/My Book.db"),
			"cp '/sdcard/My Book.db' '/data/local/My Book.db'",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.cmd.Render()
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("Render = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestElevatedCommandRenderRejectsIncomplete(t *testing.T) {
	incomplete := []ElevatedCommand{
		{Op: OpCopy, Src: "/a"},
		{Op: OpChown, Path: "/a"},
		{Op: OpChcon, Label: "u:object_r:app_data_file:s0"},
		{Op: OpList},
		{Op: ElevatedOp(99), Path: "/a"},
	}
	for _, cmd := range incomplete {
		if _, err := cmd.Render(); err == nil {
			t.Fatalf("expected render error for %+v", cmd)
		}
	}
}

func TestParseDirListing(t *testing.T) {
	out := "drwxrwx--x 4 u0_a123 u0_a123 u:object_r:app_data_file:s0:c123,c256 4096 2024-01-01 00:00 /data/data/com.amazon.kindle/databases\n"
	info, err := ParseDirListing(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Owner != "u0_a123" {
		t.Fatalf("owner = %q", info.Owner)
	}
	if info.Label != "u:object_r:app_data_file:s0:c123,c256" {
		t.Fatalf("label = %q", info.Label)
	}

	if _, err := ParseDirListing("garbage"); err == nil {
		t.Fatal("expected error for short listing")
	}
}
