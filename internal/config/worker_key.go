package config

type WorkerKeyStruct struct {
	FileCleanupQueue string
}

var WorkerKey = &WorkerKeyStruct{
	FileCleanupQueue: "file_cleanup_queue",
}
