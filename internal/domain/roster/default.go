package roster

var defaultPlayers = []Player{
	{Name: "Ahmed", ID: "7f1e43d8-80f0-49c6-84ac-6378af6de477"},
	{Name: "Fasin", ID: "d58595c9-cb6c-4b9d-8158-523f6b893580"},
	{Name: "Hamsheed", ID: "6e3d931a-dc26-4b90-81f0-59ff53019e50"},
	{Name: "Jalal", ID: "6c0ce954-87a5-41b2-8898-1330751155b0"},
	{Name: "Shareef", ID: "ba7c5acc-c94d-466e-8d5a-0c7773c2bf0c"},
	{Name: "Shaheen", ID: "10825c4b-23d0-4e93-8c49-eadface5aeb3"},
	{Name: "Emaad", ID: "ac54a34c-4448-4721-8442-5dde27973756"},
	{Name: "Darwish", ID: "6c6b378f-2748-467a-8eca-62c782eacd0a"},
	{Name: "Luqman", ID: "df86a60e-5940-406a-8330-f74379c89da3"},
	{Name: "Nabeel", ID: "3b16e4b3-82f5-4a0e-80d3-86f6b149891a"},
	{Name: "Jinish", ID: "793fb65a-2b41-41d8-84d4-f4ab015c6aab"},
	{Name: "Afzal", ID: "e30229fa-f9d5-4440-8dc4-471d213ffb6b"},
	{Name: "Rathul", ID: "d7a8e753-d98e-43d6-8c44-6eda18f32d4d"},
	{Name: "Madan", ID: "611a0a44-d1e2-40fe-8946-ba84e980a694"},
	{Name: "Waleed", ID: "1b6a5f4a-c0e8-4694-83cb-4da00c20545e"},
	{Name: "Ahmed-Ateeq", ID: "149aedd7-a9a5-4810-8002-c67163cd5cf6"},
	{Name: "Junaid", ID: "1215383b-bbb7-43f3-8759-2f5b69994330"},
	{Name: "Shafeer", ID: "dfea2af6-9ab5-4e88-8f0b-6860f83ae8ef"},
	{Name: "Fathah", ID: "ae977a0c-cfb6-4827-87c9-f2448f03164e"},
	{Name: "Nithin", ID: "42c2e951-394b-4b32-8823-3b5f70d3a56d"},
}

var defaultRegistry = MustNew(defaultPlayers)

// Default returns the league's compiled-in 20 player registry.
func Default() *Registry {
	return defaultRegistry
}
